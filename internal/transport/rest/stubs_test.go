package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/dashboard"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
	"github.com/heartmarshall/moderation-backend/internal/service/review"
	"github.com/heartmarshall/moderation-backend/internal/service/settings"
)

type dictionaryStub struct {
	ListTermsFunc  func(ctx context.Context, input dictionary.ListInput) ([]domain.Term, error)
	GetTermFunc    func(ctx context.Context, id int64) (*domain.Term, error)
	AddTermFunc    func(ctx context.Context, input dictionary.AddTermInput) (*domain.Term, error)
	UpdateTermFunc func(ctx context.Context, input dictionary.UpdateTermInput) (*domain.Term, error)
	RemoveTermFunc func(ctx context.Context, id int64) error
}

func (s *dictionaryStub) ListTerms(ctx context.Context, input dictionary.ListInput) ([]domain.Term, error) {
	return s.ListTermsFunc(ctx, input)
}

func (s *dictionaryStub) GetTerm(ctx context.Context, id int64) (*domain.Term, error) {
	return s.GetTermFunc(ctx, id)
}

func (s *dictionaryStub) AddTerm(ctx context.Context, input dictionary.AddTermInput) (*domain.Term, error) {
	return s.AddTermFunc(ctx, input)
}

func (s *dictionaryStub) UpdateTerm(ctx context.Context, input dictionary.UpdateTermInput) (*domain.Term, error) {
	return s.UpdateTermFunc(ctx, input)
}

func (s *dictionaryStub) RemoveTerm(ctx context.Context, id int64) error {
	return s.RemoveTermFunc(ctx, id)
}

type moderationStub struct {
	ClassifyFunc func(ctx context.Context, text string) (domain.Verdict, error)
	AnalyzeFunc  func(ctx context.Context, text string) (domain.Verdict, error)
	ModerateFunc func(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error)
}

func (s *moderationStub) Classify(ctx context.Context, text string) (domain.Verdict, error) {
	return s.ClassifyFunc(ctx, text)
}

func (s *moderationStub) Analyze(ctx context.Context, text string) (domain.Verdict, error) {
	return s.AnalyzeFunc(ctx, text)
}

func (s *moderationStub) Moderate(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error) {
	return s.ModerateFunc(ctx, input)
}

type reviewStub struct {
	ListFunc       func(ctx context.Context, input review.ListInput) ([]domain.ReviewItem, error)
	TransitionFunc func(ctx context.Context, action string, id uuid.UUID) (*domain.ReviewItem, error)
}

func (s *reviewStub) List(ctx context.Context, input review.ListInput) ([]domain.ReviewItem, error) {
	return s.ListFunc(ctx, input)
}

func (s *reviewStub) Get(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.TransitionFunc(ctx, "get", id)
}

func (s *reviewStub) Approve(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.TransitionFunc(ctx, "approve", id)
}

func (s *reviewStub) Reject(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.TransitionFunc(ctx, "reject", id)
}

func (s *reviewStub) Escalate(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.TransitionFunc(ctx, "escalate", id)
}

type settingsStub struct {
	GetFunc    func(ctx context.Context) (domain.Settings, error)
	UpdateFunc func(ctx context.Context, input settings.UpdateInput) (domain.Settings, error)
}

func (s *settingsStub) Get(ctx context.Context) (domain.Settings, error) { return s.GetFunc(ctx) }

func (s *settingsStub) Update(ctx context.Context, input settings.UpdateInput) (domain.Settings, error) {
	return s.UpdateFunc(ctx, input)
}

type dashboardStub struct {
	OverviewFunc func(ctx context.Context) (*dashboard.Overview, error)
}

func (s *dashboardStub) Overview(ctx context.Context) (*dashboard.Overview, error) {
	return s.OverviewFunc(ctx)
}

type services struct {
	dict      *dictionaryStub
	mod       *moderationStub
	reviews   *reviewStub
	settings  *settingsStub
	dashboard *dashboardStub
}

// newTestRouter wires stubs into the real router with no API middleware.
func newTestRouter(s services) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	identity := func(next http.Handler) http.Handler { return next }

	return NewRouter(Handlers{
		Health:     NewHealthHandler(nil, "memory", "test"),
		Terms:      NewTermHandler(s.dict, logger),
		Moderation: NewModerationHandler(s.mod, logger),
		Reviews:    NewReviewHandler(s.reviews, logger),
		Settings:   NewSettingsHandler(s.settings, logger),
		Dashboard:  NewDashboardHandler(s.dashboard, logger),
	}, identity)
}
