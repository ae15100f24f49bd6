package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// GormFinishRepository is a GORM implementation of FinishRepository
type GormFinishRepository struct {
	db *gorm.DB
}

// NewFinishRepository creates a new FinishRepository
func NewFinishRepository(db *gorm.DB) FinishRepository {
	return &GormFinishRepository{db: db}
}

func (r *GormFinishRepository) WithTx(tx *gorm.DB) FinishRepository {
	return &GormFinishRepository{db: tx}
}

func (r *GormFinishRepository) CreatePaint(ctx context.Context, paint *models.Paint) error {
	return r.db.WithContext(ctx).Create(paint).Error
}

func (r *GormFinishRepository) FindPaint(ctx context.Context, id string) (*models.Paint, error) {
	return findFinish[models.Paint](ctx, r.db, id)
}

func (r *GormFinishRepository) ListPaints(ctx context.Context, scope FinishScope) ([]models.Paint, error) {
	return listFinishes[models.Paint](ctx, r.db, scope)
}

func (r *GormFinishRepository) DeletePaint(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Paint{}).Error
}

func (r *GormFinishRepository) CreateFlooring(ctx context.Context, flooring *models.Flooring) error {
	return r.db.WithContext(ctx).Create(flooring).Error
}

func (r *GormFinishRepository) FindFlooring(ctx context.Context, id string) (*models.Flooring, error) {
	return findFinish[models.Flooring](ctx, r.db, id)
}

func (r *GormFinishRepository) ListFloorings(ctx context.Context, scope FinishScope) ([]models.Flooring, error) {
	return listFinishes[models.Flooring](ctx, r.db, scope)
}

func (r *GormFinishRepository) DeleteFlooring(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Flooring{}).Error
}

func findFinish[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var finish T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&finish).Error; err != nil {
		return nil, err
	}
	return &finish, nil
}

func listFinishes[T any](ctx context.Context, db *gorm.DB, scope FinishScope) ([]T, error) {
	var finishes []T
	query := db.WithContext(ctx).Where("home_id = ?", scope.HomeID)
	if scope.RoomID != nil {
		query = query.Where("room_id = ?", *scope.RoomID)
	}
	if err := query.Order("created_at ASC").Find(&finishes).Error; err != nil {
		return nil, err
	}
	return finishes, nil
}
