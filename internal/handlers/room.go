package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yukikurage/home-inventory-api/internal/dto"
	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

// RoomHandler serves rooms and the items inside them.
type RoomHandler struct {
	roomService *services.RoomService
	itemService *services.ItemService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService *services.RoomService, itemService *services.ItemService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		itemService: itemService,
	}
}

type roomRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

func (r roomRequest) input() services.RoomInput {
	return services.RoomInput{Name: r.Name, Description: r.Description, Images: r.Images}
}

type itemRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Manufacturer  *string          `json:"manufacturer"`
	ModelNumber   *string          `json:"model_number"`
	SerialNumber  *string          `json:"serial_number"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	WarrantyUntil *time.Time       `json:"warranty_until"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	ManualURL     *string          `json:"manual_url"`
	Images        []string         `json:"images"`
}

func (r itemRequest) input() services.ItemInput {
	return services.ItemInput{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Manufacturer:  r.Manufacturer,
		ModelNumber:   r.ModelNumber,
		SerialNumber:  r.SerialNumber,
		PurchaseDate:  r.PurchaseDate,
		WarrantyUntil: r.WarrantyUntil,
		PurchasePrice: r.PurchasePrice,
		ManualURL:     r.ManualURL,
		Images:        r.Images,
	}
}

// ListRooms lists the rooms of a home
func (h *RoomHandler) ListRooms(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": dto.ToRoomDTOs(rooms)})
}

// CreateRoom creates a room in a home
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), c.Param("id"), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomDTO(*room))
}

// GetRoom returns a room with its items and finishes
func (h *RoomHandler) GetRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDTO(*room))
}

// UpdateRoom updates a room
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), c.Param("id"), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDTO(*room))
}

// DeleteRoom deletes a room and its contents
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// ListItems lists the items of a room
func (h *RoomHandler) ListItems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.ToItemDTOs(items)})
}

// CreateItem creates an item in a room
func (h *RoomHandler) CreateItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), c.Param("id"), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemDTO(*item))
}

// GetItem returns an item
func (h *RoomHandler) GetItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTO(*item))
}

// UpdateItem updates an item
func (h *RoomHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTO(*item))
}

// DeleteItem deletes an item and its tasks
func (h *RoomHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
