package dto

import (
	"time"

	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// HomeDTO represents a home in API responses
type HomeDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	OwnerID     string    `json:"owner_id"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       *UserDTO  `json:"owner,omitempty"`
	Rooms       []RoomDTO `json:"rooms,omitempty"`
}

// ShareDTO represents a share of a home
type ShareDTO struct {
	HomeID    string           `json:"home_id"`
	User      *UserDTO         `json:"user,omitempty"`
	UserID    string           `json:"user_id"`
	Role      models.ShareRole `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
}

// ToHomeDTO converts a Home model to HomeDTO
func ToHomeDTO(home models.Home) HomeDTO {
	dto := HomeDTO{
		ID:          home.ID,
		Name:        home.Name,
		Address:     home.Address,
		Description: home.Description,
		Images:      images(home.Images),
		OwnerID:     home.UserID,
		CreatedAt:   home.CreatedAt,
		UpdatedAt:   home.UpdatedAt,
		Owner:       optionalUser(home.Owner),
	}
	if len(home.Rooms) > 0 {
		dto.Rooms = make([]RoomDTO, len(home.Rooms))
		for i, room := range home.Rooms {
			dto.Rooms[i] = ToRoomDTO(room)
		}
	}
	return dto
}

// ToHomeAccessDTOs converts homes with the caller's role
func ToHomeAccessDTOs(homes []repository.HomeAccess) []HomeDTO {
	out := make([]HomeDTO, len(homes))
	for i, h := range homes {
		out[i] = ToHomeDTO(h.Home)
		out[i].Role = h.Role
	}
	return out
}

// ToShareDTO converts a Share model to ShareDTO
func ToShareDTO(share models.Share) ShareDTO {
	return ShareDTO{
		HomeID:    share.HomeID,
		UserID:    share.UserID,
		User:      optionalUser(share.User),
		Role:      share.Role,
		CreatedAt: share.CreatedAt,
	}
}

// ToShareDTOs converts a slice of shares
func ToShareDTOs(shares []models.Share) []ShareDTO {
	out := make([]ShareDTO, len(shares))
	for i, s := range shares {
		out[i] = ToShareDTO(s)
	}
	return out
}

func images(src []string) []string {
	if src == nil {
		return []string{}
	}
	return src
}
