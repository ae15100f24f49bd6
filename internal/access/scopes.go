package access

import (
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// Level is the kind of access an operation needs.
type Level int

const (
	// Read is satisfied by ownership or any share.
	Read Level = iota + 1
	// Write is satisfied by ownership or a WRITE share.
	Write
	// Owner is satisfied by ownership only.
	Owner
	// Fulfil is Write for homes, rooms and items. For tasks it also admits
	// the assignee, so that completing or deleting an assigned chore works
	// without a WRITE share.
	Fulfil
)

func (l Level) String() string {
	switch l {
	case Read:
		return "read"
	case Write:
		return "write"
	case Owner:
		return "owner"
	case Fulfil:
		return "fulfil"
	}
	return "unknown"
}

// roles lists the share roles that satisfy the level, nil when only the
// owner qualifies.
func (l Level) roles() []models.ShareRole {
	switch l {
	case Read:
		return []models.ShareRole{models.ShareRoleRead, models.ShareRoleWrite}
	case Write, Fulfil:
		return []models.ShareRole{models.ShareRoleWrite}
	}
	return nil
}

// homeGrant is the ownership-or-share predicate evaluated against the row
// joined as "homes".
func homeGrant(userID string, level Level) (string, []any) {
	roles := level.roles()
	if len(roles) == 0 {
		return "homes.user_id = ?", []any{userID}
	}
	return "(homes.user_id = ? OR EXISTS (SELECT 1 FROM shares WHERE shares.home_id = homes.id AND shares.user_id = ? AND shares.role IN ?))",
		[]any{userID, userID, roles}
}

// Homes restricts a query on homes to those the user holds level on.
func Homes(userID string, level Level) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond, args := homeGrant(userID, level)
		return db.Where(cond, args...)
	}
}

// Rooms restricts a query on rooms through the parent home.
func Rooms(userID string, level Level) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond, args := homeGrant(userID, level)
		return db.Joins("JOIN homes ON homes.id = rooms.home_id").Where(cond, args...)
	}
}

// Items restricts a query on items through the parent room and home.
func Items(userID string, level Level) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		cond, args := homeGrant(userID, level)
		return db.
			Joins("JOIN rooms ON rooms.id = items.room_id").
			Joins("JOIN homes ON homes.id = rooms.home_id").
			Where(cond, args...)
	}
}

// Tasks restricts a query on tasks. The bound location is walked item >
// room > home in the same statement. The creator always passes; the
// assignee passes for Read and Fulfil.
func Tasks(userID string, level Level) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		locLevel := level
		if level == Fulfil {
			locLevel = Write
		}
		cond, args := homeGrant(userID, locLevel)

		owners := "tasks.creator_id = ?"
		ownerArgs := []any{userID}
		if level == Read || level == Fulfil {
			owners = "tasks.creator_id = ? OR tasks.assignee_id = ?"
			ownerArgs = append(ownerArgs, userID)
		}

		return db.
			Joins("LEFT JOIN items ON items.id = tasks.item_id").
			Joins("LEFT JOIN rooms ON rooms.id = COALESCE(tasks.room_id, items.room_id)").
			Joins("LEFT JOIN homes ON homes.id = COALESCE(rooms.home_id, tasks.home_id)").
			Where("("+owners+" OR "+cond+")", append(ownerArgs, args...)...)
	}
}
