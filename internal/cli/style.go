package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Theme holds the colors used for verdict and table output.
type Theme struct {
	Safe   lipgloss.Color
	Low    lipgloss.Color
	Medium lipgloss.Color
	High   lipgloss.Color
	Hint   lipgloss.Color
}

var defaultTheme = Theme{
	Safe:   lipgloss.Color("#00D787"), // green
	Low:    lipgloss.Color("#5FAFD7"), // light blue
	Medium: lipgloss.Color("#FFAF00"), // amber
	High:   lipgloss.Color("#FF005F"), // red
	Hint:   lipgloss.Color("#6C6C6C"), // dim gray
}

// styler renders for a specific writer, so non-terminal output stays plain.
type styler struct {
	r     *lipgloss.Renderer
	theme Theme
}

func newStyler(w io.Writer) styler {
	return styler{r: lipgloss.NewRenderer(w), theme: defaultTheme}
}

func (s styler) severity(sev domain.Severity) string {
	color := s.theme.Low
	switch sev {
	case domain.SeverityMedium:
		color = s.theme.Medium
	case domain.SeverityHigh:
		color = s.theme.High
	}
	return s.r.NewStyle().Foreground(color).Render(sev.String())
}

func (s styler) flagged(flagged bool) string {
	if flagged {
		return s.r.NewStyle().Foreground(s.theme.High).Bold(true).Render("FLAGGED")
	}
	return s.r.NewStyle().Foreground(s.theme.Safe).Bold(true).Render("safe")
}

func (s styler) hint(text string) string {
	return s.r.NewStyle().Foreground(s.theme.Hint).Italic(true).Render(text)
}
