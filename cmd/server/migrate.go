package main

import (
	"fmt"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/spf13/cobra"

	"github.com/yukikurage/home-inventory-api/internal/config"
	"github.com/yukikurage/home-inventory-api/internal/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			logger.New("server").Function("migrate").Info("Migrations applied", "driver", cfg.DBDriver)
			return nil
		},
	}
}
