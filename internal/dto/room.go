package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// RoomDTO represents a room in API responses
type RoomDTO struct {
	ID          string        `json:"id"`
	HomeID      string        `json:"home_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Home        *HomeDTO      `json:"home,omitempty"`
	Items       []ItemDTO     `json:"items,omitempty"`
	Paints      []PaintDTO    `json:"paints,omitempty"`
	Floorings   []FlooringDTO `json:"floorings,omitempty"`
}

// ItemDTO represents an item in API responses
type ItemDTO struct {
	ID            string           `json:"id"`
	RoomID        string           `json:"room_id"`
	HomeID        string           `json:"home_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Manufacturer  string           `json:"manufacturer"`
	ModelNumber   string           `json:"model_number"`
	SerialNumber  string           `json:"serial_number"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	WarrantyUntil *time.Time       `json:"warranty_until"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	ManualURL     string           `json:"manual_url"`
	Images        []string         `json:"images"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Room          *RoomDTO         `json:"room,omitempty"`
}

// ToRoomDTO converts a Room model to RoomDTO
func ToRoomDTO(room models.Room) RoomDTO {
	dto := RoomDTO{
		ID:          room.ID,
		HomeID:      room.HomeID,
		Name:        room.Name,
		Description: room.Description,
		Images:      images(room.Images),
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
	if room.Home != nil {
		home := ToHomeDTO(*room.Home)
		dto.Home = &home
	}
	for _, item := range room.Items {
		dto.Items = append(dto.Items, ToItemDTO(item))
	}
	for _, paint := range room.Paints {
		dto.Paints = append(dto.Paints, ToPaintDTO(paint))
	}
	for _, flooring := range room.Floorings {
		dto.Floorings = append(dto.Floorings, ToFlooringDTO(flooring))
	}
	return dto
}

// ToRoomDTOs converts a slice of rooms
func ToRoomDTOs(rooms []models.Room) []RoomDTO {
	out := make([]RoomDTO, len(rooms))
	for i, r := range rooms {
		out[i] = ToRoomDTO(r)
	}
	return out
}

// ToItemDTO converts an Item model to ItemDTO
func ToItemDTO(item models.Item) ItemDTO {
	dto := ItemDTO{
		ID:            item.ID,
		RoomID:        item.RoomID,
		HomeID:        item.HomeID,
		Name:          item.Name,
		Description:   item.Description,
		Category:      item.Category,
		Manufacturer:  item.Manufacturer,
		ModelNumber:   item.ModelNumber,
		SerialNumber:  item.SerialNumber,
		PurchaseDate:  item.PurchaseDate,
		WarrantyUntil: item.WarrantyUntil,
		PurchasePrice: item.PurchasePrice,
		ManualURL:     item.ManualURL,
		Images:        images(item.Images),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.Room != nil {
		room := ToRoomDTO(*item.Room)
		dto.Room = &room
	}
	return dto
}

// ToItemDTOs converts a slice of items
func ToItemDTOs(items []models.Item) []ItemDTO {
	out := make([]ItemDTO, len(items))
	for i, item := range items {
		out[i] = ToItemDTO(item)
	}
	return out
}
