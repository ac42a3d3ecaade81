package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		// Runs without loading configuration.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "List every supported environment variable with its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage, err := config.Usage()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return nil
		},
	})
	return cmd
}
