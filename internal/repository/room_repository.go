package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// GormRoomRepository is a GORM implementation of RoomRepository
type GormRoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) WithTx(tx *gorm.DB) RoomRepository {
	return &GormRoomRepository{db: tx}
}

func (r *GormRoomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(room).Error
}

func (r *GormRoomRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Room, error) {
	var room models.Room
	query := r.db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *GormRoomRepository) ListByHome(ctx context.Context, homeID string) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("home_id = ?", homeID).Order("name ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *GormRoomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "home_id").Save(room).Error
}

// Delete deletes a room together with its items, tasks and finishes
func (r *GormRoomRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	for _, model := range []any{&models.Task{}, &models.Paint{}, &models.Flooring{}, &models.Item{}} {
		if err := db.Where("room_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	return db.Where("id = ?", id).Delete(&models.Room{}).Error
}
