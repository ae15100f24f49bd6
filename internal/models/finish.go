package models

// Paint records a paint used on a home or one of its rooms.
type Paint struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Brand    string  `gorm:"type:varchar(255)" json:"brand"`
	Color    string  `gorm:"type:varchar(255)" json:"color"`
	Finish   string  `gorm:"type:varchar(255)" json:"finish"`
	Code     string  `gorm:"type:varchar(255)" json:"code"`
	Location string  `gorm:"type:varchar(255)" json:"location"`
	Notes    string  `gorm:"type:text" json:"notes"`
	HomeID   string  `gorm:"type:varchar(36);not null;index" json:"home_id"`
	RoomID   *string `gorm:"type:varchar(36);index" json:"room_id"`
}

// Flooring records a floor covering used on a home or one of its rooms.
type Flooring struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Type     string  `gorm:"type:varchar(255)" json:"type"`
	Material string  `gorm:"type:varchar(255)" json:"material"`
	Brand    string  `gorm:"type:varchar(255)" json:"brand"`
	Color    string  `gorm:"type:varchar(255)" json:"color"`
	Pattern  string  `gorm:"type:varchar(255)" json:"pattern"`
	Notes    string  `gorm:"type:text" json:"notes"`
	HomeID   string  `gorm:"type:varchar(36);not null;index" json:"home_id"`
	RoomID   *string `gorm:"type:varchar(36);index" json:"room_id"`
}
