package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yukikurage/home-inventory-api/internal/database"
	"github.com/yukikurage/home-inventory-api/internal/models"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func (f fixture) user(email string) *models.User {
	user := &models.User{Email: email, Name: email, PasswordHash: "hashed"}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

func (f fixture) home(owner *models.User, name string) *models.Home {
	home := &models.Home{Name: name, UserID: owner.ID}
	require.NoError(f.t, f.db.Omit("Owner").Create(home).Error)
	return home
}

func (f fixture) share(home *models.Home, user *models.User, role models.ShareRole) {
	require.NoError(f.t, f.db.Omit("Home", "User").Create(&models.Share{HomeID: home.ID, UserID: user.ID, Role: role}).Error)
}

func (f fixture) room(home *models.Home, name string) *models.Room {
	room := &models.Room{Name: name, HomeID: home.ID}
	require.NoError(f.t, f.db.Omit("Home").Create(room).Error)
	return room
}

func (f fixture) item(room *models.Room, name string) *models.Item {
	item := &models.Item{Name: name, RoomID: room.ID, HomeID: room.HomeID}
	require.NoError(f.t, f.db.Omit("Room").Create(item).Error)
	return item
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(t *testing.T, want time.Time, got *time.Time) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Format("2006-01-02"), got.UTC().Format("2006-01-02"))
}
