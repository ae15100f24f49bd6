package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Item struct {
	BaseModel
	Name          string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description   string                      `gorm:"type:text" json:"description"`
	Category      string                      `gorm:"type:varchar(255)" json:"category"`
	Manufacturer  string                      `gorm:"type:varchar(255)" json:"manufacturer"`
	ModelNumber   string                      `gorm:"type:varchar(255)" json:"model_number"`
	SerialNumber  string                      `gorm:"type:varchar(255)" json:"serial_number"`
	PurchaseDate  *time.Time                  `json:"purchase_date"`
	WarrantyUntil *time.Time                  `json:"warranty_until"`
	PurchasePrice *decimal.Decimal            `gorm:"type:decimal(12,2)" json:"purchase_price"`
	ManualURL     string                      `gorm:"type:text" json:"manual_url"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	RoomID        string                      `gorm:"type:varchar(36);not null;index" json:"room_id"`
	HomeID        string                      `gorm:"type:varchar(36);not null;index" json:"home_id"`

	// Relations
	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Tasks []Task `gorm:"foreignKey:ItemID" json:"tasks,omitempty"`
}
