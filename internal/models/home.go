package models

import "gorm.io/datatypes"

type Home struct {
	BaseModel
	Name        string                      `gorm:"type:varchar(255);not null" json:"name"`
	Address     string                      `gorm:"type:text" json:"address"`
	Description string                      `gorm:"type:text" json:"description"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	UserID      string                      `gorm:"type:varchar(36);not null;index" json:"user_id"`

	// Relations
	Owner     *User      `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Shares    []Share    `gorm:"foreignKey:HomeID" json:"shares,omitempty"`
	Rooms     []Room     `gorm:"foreignKey:HomeID" json:"rooms,omitempty"`
	Tasks     []Task     `gorm:"foreignKey:HomeID" json:"tasks,omitempty"`
	Paints    []Paint    `gorm:"foreignKey:HomeID" json:"paints,omitempty"`
	Floorings []Flooring `gorm:"foreignKey:HomeID" json:"floorings,omitempty"`
}
