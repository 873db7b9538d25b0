package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sabbath-lesson-api",
		Short:         "REST API for Sabbath school lessons and their languages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app holds what every command needs. close releases the database pool and
// flushes the logger.
type app struct {
	cfg *config.Config
	log *logger.Logger
	db  database.Service
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig() > %w", err)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger.New() > %w", err)
	}

	db, err := database.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database.New() > %w", err)
	}

	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("failed to close database", "error", err)
	}
	a.log.Sync()
}
