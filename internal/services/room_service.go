package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// RoomService provides business logic for rooms.
type RoomService struct {
	txService *TransactionService
	resolver  *access.Resolver
	roomRepo  repository.RoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(txService *TransactionService, resolver *access.Resolver, roomRepo repository.RoomRepository) *RoomService {
	return &RoomService{
		txService: txService,
		resolver:  resolver,
		roomRepo:  roomRepo,
	}
}

// RoomInput carries the editable fields of a room. The home is fixed at
// creation.
type RoomInput struct {
	Name        *string
	Description *string
	Images      []string
}

// CreateRoom creates a room in a home the user may write.
func (s *RoomService) CreateRoom(ctx context.Context, homeID, userID string, input RoomInput) (*models.Room, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}

	room := &models.Room{HomeID: homeID}
	applyRoomInput(room, input)

	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Home(ctx, userID, homeID, access.Write); err != nil {
			return err
		}
		return s.roomRepo.WithTx(tx).Create(ctx, room)
	})
	if err != nil {
		return nil, storeErr("create room", err)
	}
	return room, nil
}

// ListRooms lists the rooms of a home the user may read.
func (s *RoomService) ListRooms(ctx context.Context, homeID, userID string) ([]models.Room, error) {
	if _, err := s.resolver.Home(ctx, userID, homeID, access.Read); err != nil {
		return nil, storeErr("list rooms", err)
	}
	rooms, err := s.roomRepo.ListByHome(ctx, homeID)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	return rooms, nil
}

// GetRoom returns a room with its items and finishes.
func (s *RoomService) GetRoom(ctx context.Context, roomID, userID string) (*models.Room, error) {
	if _, err := s.resolver.Room(ctx, userID, roomID, access.Read); err != nil {
		return nil, storeErr("get room", err)
	}
	room, err := s.roomRepo.FindByID(ctx, roomID, "Home", "Items", "Paints", "Floorings")
	if err != nil {
		return nil, notFound("get room", err)
	}
	return room, nil
}

// UpdateRoom applies a partial update. Requires WRITE on the home.
func (s *RoomService) UpdateRoom(ctx context.Context, roomID, userID string, input RoomInput) (*models.Room, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}

	var room *models.Room
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		room, err = s.resolver.WithTx(tx).Room(ctx, userID, roomID, access.Write)
		if err != nil {
			return err
		}
		applyRoomInput(room, input)
		return s.roomRepo.WithTx(tx).Update(ctx, room)
	})
	if err != nil {
		return nil, storeErr("update room", err)
	}
	return room, nil
}

// DeleteRoom removes a room with its items, tasks and finishes.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Room(ctx, userID, roomID, access.Write); err != nil {
			return err
		}
		return s.roomRepo.WithTx(tx).Delete(ctx, roomID)
	})
	return storeErr("delete room", err)
}

func applyRoomInput(room *models.Room, input RoomInput) {
	if input.Name != nil {
		room.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Images != nil {
		room.Images = input.Images
	}
}
