package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/matt-dz/foodgram/internal/api"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/setup"
	"github.com/spf13/cobra"
)

const setupTime = 30 * time.Second

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "foodgram",
		Short: "Foodgram recipe sharing API server",
		// Running the bare binary serves the API.
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Apply the schema, bootstrap the admin and serve the API",
		RunE:  runServe,
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE:  runMigrate,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return log.NewWithWriter(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger(cmd)

	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	fs, err := setup.FileStore(setupCtx, conf.FileStore, conf.HostOrigin)
	if err != nil {
		return fmt.Errorf("setting up file store: %w", err)
	}

	db, err := setup.Database(setupCtx, conf.Database, logger)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer func() { _ = db.Close() }()

	env := env.New(logger, db, fs, &conf, metrics.New())

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, env); err != nil {
		return fmt.Errorf("setting up admin: %w", err)
	}

	if err := api.Start(ctx, env); err != nil {
		return fmt.Errorf("running api: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger(cmd)

	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	db, err := setup.Database(setupCtx, conf.Database, logger)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.InfoContext(ctx, "schema applied", slog.String("driver", conf.Database.Driver))
	return nil
}
