package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, a.db.DB().DB); err != nil {
			return err
		}
		a.log.Info("database schema is up to date")
	}

	a.log.Info("starting server", "port", a.cfg.Port, "env", a.cfg.AppEnv)
	if err := server.NewServer(a.db, a.cfg, a.log).Serve(ctx); err != nil {
		a.log.Error("server stopped with error", "error", err)
		return err
	}
	a.log.Info("server stopped")
	return nil
}
