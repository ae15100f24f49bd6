package models

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string `gorm:"type:varchar(255)" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`

	// Relations
	OwnedHomes  []Home  `gorm:"foreignKey:UserID" json:"-"`
	SharedHomes []Share `gorm:"foreignKey:UserID" json:"-"`
}
