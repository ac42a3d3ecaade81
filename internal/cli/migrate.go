package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/migrations"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the storage schema (postgres and sqlite drivers)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, dialect, closeDB, err := app.OpenMigrationDB(cmd.Context(), e.cfg)
				if err != nil {
					return err
				}
				defer closeDB()

				n, err := migrations.Up(cmd.Context(), db, dialect)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) (%s)\n", n, dialect)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, dialect, closeDB, err := app.OpenMigrationDB(cmd.Context(), e.cfg)
				if err != nil {
					return err
				}
				defer closeDB()

				provider, err := migrations.NewProvider(db, dialect)
				if err != nil {
					return err
				}
				statuses, err := provider.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migration status: %w", err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return w.Flush()
			},
		},
	)
	return cmd
}
