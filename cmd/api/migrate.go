package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Migrate(ctx, a.db.DB().DB); err != nil {
				return err
			}

			version, err := database.MigrationVersion(ctx, a.db.DB().DB)
			if err != nil {
				return fmt.Errorf("database.MigrationVersion() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}
}
