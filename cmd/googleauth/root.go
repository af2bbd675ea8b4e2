package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/progressit/googleauth/internal/config"
	"github.com/progressit/googleauth/pkg/logger"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.NewNope()}

	root := &cobra.Command{
		Use:           "googleauth",
		Short:         "Build and inspect Google OAuth2 sign-in requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&a.envFile, "env-file", "", ".env file to load before reading the environment")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAuthURLCmd(a),
		newTokenURLCmd(a),
		newParseTokenCmd(a),
		newHeaderCmd(),
		newExplainErrorCmd(),
		newCallbackCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.NewWithSentry(cmd.ErrOrStderr(), cfg.Log, cfg.Sentry)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With(slog.String("command", cmd.Name()))
	return nil
}
