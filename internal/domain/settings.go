package domain

// Settings are the operator-tunable moderation preferences.
type Settings struct {
	Mode                ModerationMode
	AutoModeration      bool
	RealTimeProcessing  bool
	Notifications       bool
	ConfidenceThreshold int // percent, 50..99
}

// Threshold bounds (percent).
const (
	MinConfidenceThreshold = 50
	MaxConfidenceThreshold = 99
)

// ShouldQueue reports whether a verdict crosses the auto-moderation threshold.
func (s Settings) ShouldQueue(v Verdict) bool {
	if !s.AutoModeration || !v.IsFlagged {
		return false
	}
	// Compare in whole percent; 0.6+0.15*2 is 0.8999999999999999 in float64.
	return int(v.Confidence*100+0.5) >= s.ConfidenceThreshold
}
