package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/seeder"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
)

func newTermsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Manage dictionary terms",
	}
	cmd.AddCommand(
		newTermsListCmd(e),
		newTermsAddCmd(e),
		newTermsRemoveCmd(e),
		newTermsImportCmd(e),
	)
	return cmd
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func newTermsListCmd(e *env) *cobra.Command {
	var search, category, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionary terms, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := dictionary.ListInput{
				Search:   search,
				Category: domain.Category(category),
				Status:   domain.TermStatus(status),
			}

			return e.withServices(cmd.Context(), func(svcs *app.Services) error {
				terms, err := svcs.Dictionary.ListTerms(cmd.Context(), input)
				if err != nil {
					return err
				}
				return printTerms(cmd, terms)
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive match on term or definition")
	cmd.Flags().StringVar(&category, "category", "", "category filter (all, harmful, suspicious, dismissive, positive, social_media, neutral)")
	cmd.Flags().StringVar(&status, "status", "", "status filter (active, review, inactive)")
	return cmd
}

func printTerms(cmd *cobra.Command, terms []domain.Term) error {
	out := cmd.OutOrStdout()
	if len(terms) == 0 {
		fmt.Fprintln(out, "no terms found")
		return nil
	}

	st := newStyler(out)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTERM\tSEVERITY\tCATEGORY\tSTATUS\tADDED")
	for _, t := range terms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Term, st.severity(t.Severity), t.Category, t.Status, t.DateAdded.Format("2006-01-02"))
	}
	return w.Flush()
}

// ---------------------------------------------------------------------------
// add
// ---------------------------------------------------------------------------

func newTermsAddCmd(e *env) *cobra.Command {
	var input dictionary.AddTermInput
	var severity, category string

	cmd := &cobra.Command{
		Use:   "add <term>",
		Short: "Add a term to the dictionary",
		Long: `Add a term to the dictionary. New terms are active and listed first.

Examples:
  modctl terms add "ratio" --definition "Reply that outperforms the post" --category social_media
  modctl terms add "kys" --severity high --category harmful --definition "..." --examples "go kys, just kys"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Term = args[0]
			input.Severity = domain.Severity(severity)
			input.Category = domain.Category(category)

			return e.withServices(cmd.Context(), func(svcs *app.Services) error {
				term, err := svcs.Dictionary.AddTerm(cmd.Context(), input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added term %q (id %d)\n", term.Term, term.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input.Definition, "definition", "d", "", "definition (required)")
	cmd.Flags().StringVar(&severity, "severity", "", "low, medium or high (default medium)")
	cmd.Flags().StringVar(&category, "category", "", "term category (default neutral)")
	cmd.Flags().StringVar(&input.Examples, "examples", "", "comma-separated usage examples")
	return cmd
}

// ---------------------------------------------------------------------------
// remove
// ---------------------------------------------------------------------------

func newTermsRemoveCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a term from the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid term id %q", args[0])
			}
			if !yes {
				return fmt.Errorf("refusing to remove term %d without --yes", id)
			}

			return e.withServices(cmd.Context(), func(svcs *app.Services) error {
				if err := svcs.Dictionary.RemoveTerm(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed term %d\n", id)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm removal")
	return cmd
}

// ---------------------------------------------------------------------------
// import
// ---------------------------------------------------------------------------

func newTermsImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append terms from a JSON fixture, keeping their ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := seeder.LoadFile(args[0])
			if err != nil {
				return err
			}

			return e.withServices(cmd.Context(), func(svcs *app.Services) error {
				n, err := svcs.Dictionary.Import(cmd.Context(), seeds)
				if err != nil {
					return err
				}

				stats := seeder.Summarize(seeds)
				cats := make([]string, 0, len(stats.ByCategory))
				for c, count := range stats.ByCategory {
					cats = append(cats, fmt.Sprintf("%s=%d", c, count))
				}
				slices.Sort(cats)

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d terms (%d active; %s)\n", n, stats.Active, strings.Join(cats, " "))
				return nil
			})
		},
	}
}
