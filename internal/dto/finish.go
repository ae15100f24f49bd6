package dto

import (
	"time"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// PaintDTO represents a paint record
type PaintDTO struct {
	ID        string    `json:"id"`
	HomeID    string    `json:"home_id"`
	RoomID    *string   `json:"room_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Color     string    `json:"color"`
	Finish    string    `json:"finish"`
	Code      string    `json:"code"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// FlooringDTO represents a flooring record
type FlooringDTO struct {
	ID        string    `json:"id"`
	HomeID    string    `json:"home_id"`
	RoomID    *string   `json:"room_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Material  string    `json:"material"`
	Brand     string    `json:"brand"`
	Color     string    `json:"color"`
	Pattern   string    `json:"pattern"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPaintDTO(p models.Paint) PaintDTO {
	return PaintDTO{
		ID:        p.ID,
		HomeID:    p.HomeID,
		RoomID:    p.RoomID,
		Name:      p.Name,
		Brand:     p.Brand,
		Color:     p.Color,
		Finish:    p.Finish,
		Code:      p.Code,
		Location:  p.Location,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

func ToPaintDTOs(paints []models.Paint) []PaintDTO {
	out := make([]PaintDTO, len(paints))
	for i, p := range paints {
		out[i] = ToPaintDTO(p)
	}
	return out
}

func ToFlooringDTO(f models.Flooring) FlooringDTO {
	return FlooringDTO{
		ID:        f.ID,
		HomeID:    f.HomeID,
		RoomID:    f.RoomID,
		Name:      f.Name,
		Type:      f.Type,
		Material:  f.Material,
		Brand:     f.Brand,
		Color:     f.Color,
		Pattern:   f.Pattern,
		Notes:     f.Notes,
		CreatedAt: f.CreatedAt,
	}
}

func ToFlooringDTOs(floorings []models.Flooring) []FlooringDTO {
	out := make([]FlooringDTO, len(floorings))
	for i, f := range floorings {
		out[i] = ToFlooringDTO(f)
	}
	return out
}
