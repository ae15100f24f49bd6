package models

import "gorm.io/datatypes"

type Room struct {
	BaseModel
	Name        string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description string                      `gorm:"type:text" json:"description"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	HomeID      string                      `gorm:"type:varchar(36);not null;index" json:"home_id"`

	// Relations
	Home      *Home      `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	Items     []Item     `gorm:"foreignKey:RoomID" json:"items,omitempty"`
	Tasks     []Task     `gorm:"foreignKey:RoomID" json:"tasks,omitempty"`
	Paints    []Paint    `gorm:"foreignKey:RoomID" json:"paints,omitempty"`
	Floorings []Flooring `gorm:"foreignKey:RoomID" json:"floorings,omitempty"`
}
