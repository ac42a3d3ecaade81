package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

func newClassifyCmd(e *env) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify text against the dictionary",
		Long: `Classify text against the active dictionary terms.

With --demo the built-in keyword list is used instead of the dictionary,
after the configured analysis delay.

Examples:
  modctl classify "This is stupid and makes me want to attack someone."
  modctl classify --demo "I really enjoyed this movie!"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			return e.withServices(cmd.Context(), func(svcs *app.Services) error {
				var (
					verdict domain.Verdict
					err     error
				)
				if demo {
					verdict, err = svcs.Moderation.Analyze(cmd.Context(), text)
				} else {
					verdict, err = svcs.Moderation.Classify(cmd.Context(), text)
				}
				if err != nil {
					return err
				}

				printVerdict(cmd, verdict)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in keyword list")
	return cmd
}

func printVerdict(cmd *cobra.Command, v domain.Verdict) {
	out := cmd.OutOrStdout()
	st := newStyler(out)

	fmt.Fprintf(out, "verdict:     %s\n", st.flagged(v.IsFlagged))
	fmt.Fprintf(out, "severity:    %s\n", st.severity(v.Severity))
	fmt.Fprintf(out, "confidence:  %.2f\n", v.Confidence)
	fmt.Fprintf(out, "category:    %s\n", v.Category)
	if len(v.MatchedTerms) > 0 {
		fmt.Fprintf(out, "matched:     %s\n", strings.Join(v.MatchedTerms, ", "))
	}
	fmt.Fprintf(out, "explanation: %s\n", st.hint(v.Explanation))
}
