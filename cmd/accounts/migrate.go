package main

import (
	"github.com/benx421/account-service/internal/db"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			if err := db.Migrate(cfg.Database.URL(), logger); err != nil {
				return databaseInitError(err)
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func newDBCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db-create",
		Short: "Drop and recreate the database schema",
		Long:  "Drop and recreate the database schema. Every account is deleted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			if err := db.Reset(cfg.Database.URL(), logger); err != nil {
				return databaseInitError(err)
			}
			logger.Info("database schema recreated")
			return nil
		},
	}
}
