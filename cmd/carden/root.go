package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/carden-backend/internal/app"
	"github.com/heartmarshall/carden-backend/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "carden",
		Short:         "Flashcard study sessions with SM-2 scheduling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newCleanupCommand(opts),
		newTokenCommand(opts),
		newVersionCommand(),
	)
	return root
}

// load reads the config and builds the process logger.
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log, os.Stderr), nil
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the study API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), cfg, logger)
		},
	}
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations",
		Long:      "Apply all pending migrations (up), roll back the latest one (down) or list their state (status).",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			return app.Migrate(cmd.Context(), cfg.Database, logger, args[0])
		},
	}
}

func newCleanupCommand(opts *rootOptions) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete review logs and practice history older than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			res, err := app.Cleanup(cmd.Context(), cfg, logger, olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d review logs and %d practice sessions\n", res.ReviewLogs, res.Practices)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 90*24*time.Hour, "retention period")
	return cmd
}

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var learner string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a development access token for a learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			token, err := app.IssueToken(cfg.Auth, learner)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&learner, "learner", "", "learner id (uuid)")
	_ = cmd.MarkFlagRequired("learner")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
