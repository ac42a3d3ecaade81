package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation/rules"
)

// ---------------------------------------------------------------------------
// Classify (dictionary mode)
// ---------------------------------------------------------------------------

// Classify checks text against the dictionary terms eligible for matching.
// In casual mode low-severity terms are ignored.
func (s *Service) Classify(ctx context.Context, text string) (domain.Verdict, error) {
	if err := validateText(text, s.cfg.MaxTextLength); err != nil {
		return domain.Verdict{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("get settings: %w", err)
	}

	verdict, err := s.classify(ctx, text, settings.Mode)
	if err != nil {
		return domain.Verdict{}, err
	}
	s.count(verdict)
	return verdict, nil
}

func (s *Service) classify(ctx context.Context, text string, mode domain.ModerationMode) (domain.Verdict, error) {
	terms, err := s.terms.ActiveTerms(ctx)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("load terms: %w", err)
	}

	candidates := make([]rules.Candidate, 0, len(terms))
	for _, t := range terms {
		if mode == domain.ModerationModeCasual && t.Severity == domain.SeverityLow {
			continue
		}
		candidates = append(candidates, rules.Candidate{
			Text:     t.Term,
			Severity: t.Severity,
			Category: t.Category,
		})
	}

	return rules.Classify(text, candidates), nil
}

// ---------------------------------------------------------------------------
// Analyze (demo mode)
// ---------------------------------------------------------------------------

// Analyze runs the built-in keyword list after the configured simulated
// delay. If ctx ends first the result is discarded and ctx.Err() is returned.
func (s *Service) Analyze(ctx context.Context, text string) (domain.Verdict, error) {
	if err := validateText(text, s.cfg.MaxTextLength); err != nil {
		return domain.Verdict{}, err
	}

	if s.cfg.AnalyzeDelay > 0 {
		timer := time.NewTimer(s.cfg.AnalyzeDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return domain.Verdict{}, ctx.Err()
		case <-timer.C:
		}
	}

	return rules.ClassifyKeywords(text, rules.DefaultKeywords), nil
}

// ---------------------------------------------------------------------------
// Moderate
// ---------------------------------------------------------------------------

// Moderate classifies a submission in dictionary mode and, when
// auto-moderation is on and the verdict crosses the confidence threshold,
// places it in the review queue.
func (s *Service) Moderate(ctx context.Context, input ModerateInput) (*ModerateResult, error) {
	if err := input.Validate(s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	verdict, err := s.classify(ctx, input.Text, settings.Mode)
	if err != nil {
		return nil, err
	}
	s.count(verdict)

	result := &ModerateResult{Verdict: verdict}
	if !settings.ShouldQueue(verdict) {
		return result, nil
	}

	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		platform = defaultPlatform
	}

	now := time.Now().UTC()
	item, err := s.reviews.Enqueue(ctx, &domain.ReviewItem{
		ID:           uuid.New(),
		Content:      input.Text,
		Platform:     platform,
		Severity:     verdict.Severity,
		Confidence:   verdict.Confidence,
		FlaggedTerms: verdict.MatchedTerms,
		Category:     verdict.Category,
		Status:       domain.ReviewStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("enqueue review: %w", err)
	}

	s.log.InfoContext(ctx, "content queued for review",
		slog.String("review_id", item.ID.String()),
		slog.String("severity", item.Severity.String()),
		slog.Float64("confidence", item.Confidence),
	)
	result.ReviewItem = item
	return result, nil
}
