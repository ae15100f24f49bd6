package models

type ShareRole string

const (
	ShareRoleRead  ShareRole = "READ"
	ShareRoleWrite ShareRole = "WRITE"
)

// Valid reports whether r is one of the grantable roles.
func (r ShareRole) Valid() bool {
	return r == ShareRoleRead || r == ShareRoleWrite
}

// Share grants a non-owner access to a home.
type Share struct {
	BaseModel
	HomeID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_shares_home_user" json:"home_id"`
	UserID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_shares_home_user;index" json:"user_id"`
	Role   ShareRole `gorm:"type:varchar(10);not null;default:'READ'" json:"role"`

	// Relations
	Home *Home `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
