package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yukikurage/home-inventory-api/internal/config"
	"github.com/yukikurage/home-inventory-api/internal/database"
	"github.com/yukikurage/home-inventory-api/internal/repository"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

func importCmd() *cobra.Command {
	var (
		userEmail string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore homes from an export file into a user's account",
		Long: `Restore homes from a JSON export.

Homes whose id already exists are skipped. Everything else keeps the ids and
timestamps from the file and is owned by the given user.

Examples:
  server import --user alice@example.com --file homes-export.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			var backup services.Backup
			if err := json.Unmarshal(raw, &backup); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)

			user, err := repository.NewUserRepository(db).FindByEmail(cmd.Context(), strings.ToLower(strings.TrimSpace(userEmail)))
			if err != nil {
				return fmt.Errorf("failed to find user %s: %w", userEmail, err)
			}

			importService := services.NewImportService(
				services.NewTransactionService(db, cfg.DBTxTimeout),
				repository.NewImportRepository(db),
				repository.NewHomeRepository(db),
			)
			result, err := importService.Import(cmd.Context(), user.ID, backup)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"imported %d homes (%d skipped): %d rooms, %d items, %d tasks, %d paints, %d floorings\n",
				result.HomesCreated, result.HomesSkipped,
				result.Rooms, result.Items, result.Tasks, result.Paints, result.Floorings,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&userEmail, "user", "", "email of the user who will own the imported homes")
	cmd.Flags().StringVar(&file, "file", "", "path to the export JSON")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
