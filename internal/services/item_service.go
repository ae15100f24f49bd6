package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// ItemService provides business logic for items.
type ItemService struct {
	txService *TransactionService
	resolver  *access.Resolver
	itemRepo  repository.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(txService *TransactionService, resolver *access.Resolver, itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{
		txService: txService,
		resolver:  resolver,
		itemRepo:  itemRepo,
	}
}

// ItemInput carries the editable fields of an item. Nil means unchanged.
type ItemInput struct {
	Name          *string
	Description   *string
	Category      *string
	Manufacturer  *string
	ModelNumber   *string
	SerialNumber  *string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
	PurchasePrice *decimal.Decimal
	ManualURL     *string
	Images        []string
}

// CreateItem creates an item in a room. The home id is copied from the room.
func (s *ItemService) CreateItem(ctx context.Context, roomID, userID string, input ItemInput) (*models.Item, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}
	if input.PurchasePrice != nil && input.PurchasePrice.IsNegative() {
		return nil, &ValidationError{Field: "purchase_price", Reason: "purchase price cannot be negative", Err: ErrInvalidPrice}
	}

	item := &models.Item{}
	applyItemInput(item, input)

	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		room, err := s.resolver.WithTx(tx).Room(ctx, userID, roomID, access.Write)
		if err != nil {
			return err
		}
		item.RoomID = room.ID
		item.HomeID = room.HomeID
		return s.itemRepo.WithTx(tx).Create(ctx, item)
	})
	if err != nil {
		return nil, storeErr("create item", err)
	}
	return item, nil
}

// ListItems lists the items of a room the user may read.
func (s *ItemService) ListItems(ctx context.Context, roomID, userID string) ([]models.Item, error) {
	if _, err := s.resolver.Room(ctx, userID, roomID, access.Read); err != nil {
		return nil, storeErr("list items", err)
	}
	items, err := s.itemRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, storeErr("list items", err)
	}
	return items, nil
}

// GetItem returns an item with its room.
func (s *ItemService) GetItem(ctx context.Context, itemID, userID string) (*models.Item, error) {
	if _, err := s.resolver.Item(ctx, userID, itemID, access.Read); err != nil {
		return nil, storeErr("get item", err)
	}
	item, err := s.itemRepo.FindByID(ctx, itemID, "Room")
	if err != nil {
		return nil, notFound("get item", err)
	}
	return item, nil
}

// UpdateItem applies a partial update. Requires WRITE on the home.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, userID string, input ItemInput) (*models.Item, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}
	if input.PurchasePrice != nil && input.PurchasePrice.IsNegative() {
		return nil, &ValidationError{Field: "purchase_price", Reason: "purchase price cannot be negative", Err: ErrInvalidPrice}
	}

	var item *models.Item
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		item, err = s.resolver.WithTx(tx).Item(ctx, userID, itemID, access.Write)
		if err != nil {
			return err
		}
		applyItemInput(item, input)
		return s.itemRepo.WithTx(tx).Update(ctx, item)
	})
	if err != nil {
		return nil, storeErr("update item", err)
	}
	return item, nil
}

// DeleteItem removes an item and its tasks.
func (s *ItemService) DeleteItem(ctx context.Context, itemID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Item(ctx, userID, itemID, access.Write); err != nil {
			return err
		}
		return s.itemRepo.WithTx(tx).Delete(ctx, itemID)
	})
	return storeErr("delete item", err)
}

func applyItemInput(item *models.Item, input ItemInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	setString(&item.Description, input.Description)
	setString(&item.Category, input.Category)
	setString(&item.Manufacturer, input.Manufacturer)
	setString(&item.ModelNumber, input.ModelNumber)
	setString(&item.SerialNumber, input.SerialNumber)
	setString(&item.ManualURL, input.ManualURL)

	if input.PurchaseDate != nil {
		item.PurchaseDate = input.PurchaseDate
	}
	if input.WarrantyUntil != nil {
		item.WarrantyUntil = input.WarrantyUntil
	}
	if input.PurchasePrice != nil {
		item.PurchasePrice = input.PurchasePrice
	}
	if input.Images != nil {
		item.Images = input.Images
	}
}
