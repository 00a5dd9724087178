package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlopskit/mlflow-launcher/config"
	"github.com/mlopskit/mlflow-launcher/launch"
	"github.com/mlopskit/mlflow-launcher/logger"
)

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Launch the tracking server in the foreground",
		Long: "Reads HOST, PORT, USERNAME, PASSWORD, DATABASE and BUCKET from the\n" +
			"environment. A non-empty HOST selects a MySQL-compatible backend store;\n" +
			"otherwise the server falls back to its embedded default store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "explicit .env file to merge before reading the environment")
	return cmd
}

func runServe(envFile string) error {
	var opts []config.LoaderOption
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		// The variable set being unreadable is the launcher's only own
		// fatal error: abort before any launch attempt.
		return err
	}

	logger.Init(&cfg.Logging)
	log := logger.GetGlobalLogger().WithComponent("serve")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode, err := launch.Start(ctx, cfg, log)
	if ctx.Err() != nil {
		log.Info("Tracking server stopped by signal")
		return nil
	}
	if err != nil {
		log.WithError(err).Error("Tracking server exited with error")
	}
	if exitCode != 0 {
		// Propagate the server's exit code rather than cobra's generic 1.
		if exitCode < 0 {
			exitCode = 1
		}
		os.Exit(exitCode)
	}
	return nil
}
