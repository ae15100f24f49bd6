package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// DueDateFirst orders rows by due date ascending with undated rows last,
// then by each tie-breaker. Columns must be trusted identifiers.
func DueDateFirst(column string, tieBreakers ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order("CASE WHEN " + column + " IS NULL THEN 1 ELSE 0 END, " + column + " ASC")
		for _, t := range tieBreakers {
			db = db.Order(t)
		}
		return db
	}
}
