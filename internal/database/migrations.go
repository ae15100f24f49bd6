package database

import (
	"fmt"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every table managed by Migrate.
func Models() []any {
	return []any{
		&models.User{},
		&models.Home{},
		&models.Share{},
		&models.Room{},
		&models.Item{},
		&models.Task{},
		&models.Paint{},
		&models.Flooring{},
	}
}

// Migrate creates or updates the schema and the composite indexes used by
// the hot queries.
func Migrate(db *gorm.DB) error {
	log := logger.New("database").Function("Migrate")
	log.Info("Running database migrations")

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db); err != nil {
		return err
	}

	log.Info("Database migrations completed")
	return nil
}

// AddIndexes adds composite indexes that the struct tags cannot express.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Home task lists and recent-task dashboards
		{"tasks", "idx_tasks_home_created", "home_id, created_at"},
		{"tasks", "idx_tasks_status_due", "status, due_date"},
		{"tasks", "idx_tasks_creator_status", "creator_id, status"},
		{"tasks", "idx_tasks_assignee_status", "assignee_id, status"},

		// Share lookups by grantee across homes
		{"shares", "idx_shares_user_role", "user_id, role"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
