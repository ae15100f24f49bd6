package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) WithTx(tx *gorm.DB) ItemRepository {
	return &GormItemRepository{db: tx}
}

func (r *GormItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *GormItemRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Item, error) {
	var item models.Item
	query := r.db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) ListByRoom(ctx context.Context, roomID string) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "room_id", "home_id").Save(item).Error
}

// Delete deletes an item together with its tasks
func (r *GormItemRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("item_id = ?", id).Delete(&models.Task{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Item{}).Error
}
