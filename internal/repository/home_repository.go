package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
)

// RoleOwner is the effective role reported for a home's owner.
const RoleOwner = "OWNER"

// GormHomeRepository is a GORM implementation of HomeRepository
type GormHomeRepository struct {
	db *gorm.DB
}

// NewHomeRepository creates a new HomeRepository
func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &GormHomeRepository{db: db}
}

func (r *GormHomeRepository) WithTx(tx *gorm.DB) HomeRepository {
	return &GormHomeRepository{db: tx}
}

// Create creates a new home
func (r *GormHomeRepository) Create(ctx context.Context, home *models.Home) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(home).Error
}

// FindByID finds a home by ID with optional preloading
func (r *GormHomeRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Home, error) {
	var home models.Home
	query := r.db.WithContext(ctx)
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.Where("id = ?", id).First(&home).Error; err != nil {
		return nil, err
	}
	return &home, nil
}

// ListForUser lists homes the user owns or has been shared
func (r *GormHomeRepository) ListForUser(ctx context.Context, userID string) ([]HomeAccess, error) {
	var homes []models.Home
	err := r.db.WithContext(ctx).
		Model(&models.Home{}).
		Scopes(access.Homes(userID, access.Read)).
		Order("homes.created_at DESC").
		Find(&homes).Error
	if err != nil {
		return nil, err
	}

	var shares []models.Share
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&shares).Error; err != nil {
		return nil, err
	}
	roles := make(map[string]models.ShareRole, len(shares))
	for _, s := range shares {
		roles[s.HomeID] = s.Role
	}

	result := make([]HomeAccess, 0, len(homes))
	for _, h := range homes {
		role := RoleOwner
		if h.UserID != userID {
			role = string(roles[h.ID])
		}
		result = append(result, HomeAccess{Home: h, Role: role})
	}
	return result, nil
}

// ListOwned lists homes owned by the user with their full contents
func (r *GormHomeRepository) ListOwned(ctx context.Context, userID string) ([]models.Home, error) {
	var homes []models.Home
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.created_at ASC") }).
		Preload("Rooms.Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.created_at ASC") }).
		Preload("Rooms.Items.Tasks").
		Preload("Rooms.Tasks", "tasks.item_id IS NULL").
		Preload("Rooms.Paints").
		Preload("Rooms.Floorings").
		Preload("Tasks", "tasks.room_id IS NULL AND tasks.item_id IS NULL").
		Preload("Paints", "paints.room_id IS NULL").
		Preload("Floorings", "floorings.room_id IS NULL").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&homes).Error
	if err != nil {
		return nil, err
	}
	return homes, nil
}

// Update updates a home
func (r *GormHomeRepository) Update(ctx context.Context, home *models.Home) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(home).Error
}

// Delete deletes a home and everything inside it. Room and item tasks carry
// the home id, so one statement per table is enough.
func (r *GormHomeRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	for _, model := range []any{&models.Task{}, &models.Paint{}, &models.Flooring{}, &models.Item{}, &models.Room{}, &models.Share{}} {
		if err := db.Where("home_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	return db.Where("id = ?", id).Delete(&models.Home{}).Error
}

// UpsertShare creates a share or updates the role of an existing one. The
// stored row is read back into share.
func (r *GormHomeRepository) UpsertShare(ctx context.Context, share *models.Share) error {
	db := r.db.WithContext(ctx)
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "home_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(share).Error
	if err != nil {
		return err
	}

	var stored models.Share
	if err := db.Where("home_id = ? AND user_id = ?", share.HomeID, share.UserID).First(&stored).Error; err != nil {
		return err
	}
	*share = stored
	return nil
}

// ListShares lists shares of a home with their users
func (r *GormHomeRepository) ListShares(ctx context.Context, homeID string) ([]models.Share, error) {
	var shares []models.Share
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("home_id = ?", homeID).
		Order("created_at ASC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// DeleteShare removes a share and reports how many rows were removed
func (r *GormHomeRepository) DeleteShare(ctx context.Context, homeID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("home_id = ? AND user_id = ?", homeID, userID).
		Delete(&models.Share{})
	return result.RowsAffected, result.Error
}
