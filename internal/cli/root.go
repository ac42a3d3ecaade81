// Package cli provides the modctl command-line interface: classification,
// dictionary maintenance and schema migrations against the configured storage.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/moderation-backend/internal/app"
	"github.com/heartmarshall/moderation-backend/internal/config"
)

// env carries state shared by subcommands after the root pre-run.
type env struct {
	configPath string
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the modctl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "modctl",
		Short: "Content moderation toolkit",
		Long: `modctl classifies text and maintains the term dictionary used by the
moderation server. It reads the same configuration as the server
(CONFIG_PATH or --config, overridden by environment variables).`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if e.closeLog != nil {
				return e.closeLog()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	root.AddCommand(
		newClassifyCmd(e),
		newTermsCmd(e),
		newMigrateCmd(e),
		newConfigCmd(),
	)
	return root
}

func (e *env) load(stderr io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if e.configPath != "" {
		cfg, err = config.LoadFrom(e.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if !e.verbose {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = "text"

	logger, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}

	if cfg.Storage.Driver == config.DriverMemory {
		fmt.Fprintln(stderr, "note: memory storage, dictionary changes are not persisted")
	}

	e.cfg, e.logger, e.closeLog = cfg, logger, closeLog
	return nil
}

// withServices opens storage for the duration of fn.
func (e *env) withServices(ctx context.Context, fn func(*app.Services) error) error {
	svcs, err := app.NewServices(ctx, e.cfg, e.logger)
	if err != nil {
		return err
	}
	defer svcs.Close()

	return fn(svcs)
}
