package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
)

func flaggedVerdict() domain.Verdict {
	return domain.Verdict{
		IsFlagged:    true,
		MatchedTerms: []string{"stupid", "attack"},
		Severity:     domain.SeverityMedium,
		Confidence:   0.9,
		Category:     domain.VerdictCategoryHarmful,
		Explanation:  "Content flagged due to potentially harmful language: stupid, attack",
	}
}

func TestClassify_ReturnsVerdict(t *testing.T) {
	t.Parallel()

	var gotText string
	router := newTestRouter(services{mod: &moderationStub{
		ClassifyFunc: func(_ context.Context, text string) (domain.Verdict, error) {
			gotText = text
			return flaggedVerdict(), nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/classify", `{"text":"This is stupid and makes me want to attack someone."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is stupid and makes me want to attack someone.", gotText)
	assert.JSONEq(t, `{
		"isFlagged": true,
		"matchedTerms": ["stupid", "attack"],
		"severity": "medium",
		"confidence": 0.9,
		"category": "harmful_language",
		"explanation": "Content flagged due to potentially harmful language: stupid, attack"
	}`, rec.Body.String())
}

func TestClassify_SafeVerdictHasEmptyMatches(t *testing.T) {
	t.Parallel()

	router := newTestRouter(services{mod: &moderationStub{
		ClassifyFunc: func(context.Context, string) (domain.Verdict, error) {
			return domain.Verdict{Severity: domain.SeverityLow, Confidence: 0.05, Category: domain.VerdictCategorySafe}, nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/classify", `{"text":"I really enjoyed this movie!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []any{}, body["matchedTerms"])
}

func TestClassify_EmptyTextIsValidationError(t *testing.T) {
	t.Parallel()

	router := newTestRouter(services{mod: &moderationStub{
		ClassifyFunc: func(context.Context, string) (domain.Verdict, error) {
			return domain.Verdict{}, domain.NewValidationError("text", "required")
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/classify", `{"text":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []fieldResponse{{Field: "text", Message: "required"}}, decodeError(t, rec).Fields)
}

func TestAnalyze_ClientGoneReturns499WithoutBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(services{mod: &moderationStub{
		AnalyzeFunc: func(ctx context.Context, _ string) (domain.Verdict, error) {
			<-ctx.Done()
			return domain.Verdict{}, ctx.Err()
		},
	}})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/demo/analyze", strings.NewReader(`{"text":"hate"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, middleware.StatusClientClosedRequest, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAnalyze_ReturnsVerdict(t *testing.T) {
	t.Parallel()

	router := newTestRouter(services{mod: &moderationStub{
		AnalyzeFunc: func(context.Context, string) (domain.Verdict, error) {
			return flaggedVerdict(), nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/demo/analyze", `{"text":"stupid attack"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isFlagged":true`)
}

func TestModerate_IncludesReviewItem(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	var got moderation.ModerateInput
	router := newTestRouter(services{mod: &moderationStub{
		ModerateFunc: func(_ context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error) {
			got = input
			return &moderation.ModerateResult{
				Verdict: flaggedVerdict(),
				ReviewItem: &domain.ReviewItem{
					ID:           itemID,
					Content:      input.Text,
					Platform:     input.Platform,
					Severity:     domain.SeverityMedium,
					Confidence:   0.9,
					FlaggedTerms: []string{"stupid", "attack"},
					Category:     domain.VerdictCategoryHarmful,
					Status:       domain.ReviewStatusPending,
				},
			}, nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/moderate", `{"text":"stupid attack","platform":"forum"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, moderation.ModerateInput{Text: "stupid attack", Platform: "forum"}, got)

	var body struct {
		Verdict    verdictResponse     `json:"verdict"`
		ReviewItem *reviewItemResponse `json:"reviewItem"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.ReviewItem)
	assert.Equal(t, itemID.String(), body.ReviewItem.ID)
	assert.Equal(t, "pending", body.ReviewItem.Status)
	assert.True(t, body.Verdict.IsFlagged)
}

func TestModerate_NotQueuedOmitsReviewItem(t *testing.T) {
	t.Parallel()

	router := newTestRouter(services{mod: &moderationStub{
		ModerateFunc: func(context.Context, moderation.ModerateInput) (*moderation.ModerateResult, error) {
			return &moderation.ModerateResult{Verdict: domain.Verdict{Category: domain.VerdictCategorySafe}}, nil
		},
	}})

	rec := do(t, router, http.MethodPost, "/api/v1/moderate", `{"text":"fine"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "reviewItem")
}
