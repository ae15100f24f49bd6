package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// GormImportRepository is a GORM implementation of ImportRepository
type GormImportRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new ImportRepository
func NewImportRepository(db *gorm.DB) ImportRepository {
	return &GormImportRepository{db: db}
}

func (r *GormImportRepository) WithTx(tx *gorm.DB) ImportRepository {
	return &GormImportRepository{db: tx}
}

// HomeExists reports whether a home with the id is already stored
func (r *GormImportRepository) HomeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Home{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistingIDs returns the subset of ids already stored in model's table
func (r *GormImportRepository) ExistingIDs(ctx context.Context, model any, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []string
	if err := r.db.WithContext(ctx).Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// Insert creates records without touching associations. A primary key
// conflict fails the insert.
func (r *GormImportRepository) Insert(ctx context.Context, records any) (int64, error) {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(records)
	return result.RowsAffected, result.Error
}
