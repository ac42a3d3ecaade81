package domain

import "testing"

func TestSettings_ShouldQueue(t *testing.T) {
	t.Parallel()

	flagged := func(conf float64) Verdict { return Verdict{IsFlagged: true, Confidence: conf} }

	tests := []struct {
		name     string
		settings Settings
		verdict  Verdict
		want     bool
	}{
		{"auto moderation off", Settings{AutoModeration: false, ConfidenceThreshold: 50}, flagged(0.95), false},
		{"not flagged", Settings{AutoModeration: true, ConfidenceThreshold: 50}, Verdict{Confidence: 0.05}, false},
		{"below threshold", Settings{AutoModeration: true, ConfidenceThreshold: 85}, flagged(0.75), false},
		{"at threshold", Settings{AutoModeration: true, ConfidenceThreshold: 75}, flagged(0.6 + 0.15), true},
		{"above threshold", Settings{AutoModeration: true, ConfidenceThreshold: 85}, flagged(0.9), true},
		{"saturated", Settings{AutoModeration: true, ConfidenceThreshold: 95}, flagged(0.95), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.settings.ShouldQueue(tt.verdict); got != tt.want {
				t.Errorf("ShouldQueue() = %v, want %v", got, tt.want)
			}
		})
	}
}
