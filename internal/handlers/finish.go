package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/home-inventory-api/internal/dto"
	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

// FinishHandler serves paints and floorings.
type FinishHandler struct {
	finishService *services.FinishService
}

// NewFinishHandler creates a new FinishHandler.
func NewFinishHandler(finishService *services.FinishService) *FinishHandler {
	return &FinishHandler{finishService: finishService}
}

// queryLocation reads ?home_id= or ?room_id=.
func queryLocation(c *gin.Context) services.FinishLocation {
	var loc services.FinishLocation
	if v, ok := c.GetQuery("home_id"); ok {
		loc.HomeID = &v
	}
	if v, ok := c.GetQuery("room_id"); ok {
		loc.RoomID = &v
	}
	return loc
}

// ListPaints lists paints of a home or room
func (h *FinishHandler) ListPaints(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	paints, err := h.finishService.ListPaints(c.Request.Context(), userID, queryLocation(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paints": dto.ToPaintDTOs(paints)})
}

// CreatePaint records a paint
func (h *FinishHandler) CreatePaint(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type PaintRequest struct {
		HomeID   *string `json:"home_id"`
		RoomID   *string `json:"room_id"`
		Name     string  `json:"name"`
		Brand    string  `json:"brand"`
		Color    string  `json:"color"`
		Finish   string  `json:"finish"`
		Code     string  `json:"code"`
		Location string  `json:"location"`
		Notes    string  `json:"notes"`
	}

	var req PaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	paint, err := h.finishService.CreatePaint(c.Request.Context(), userID,
		services.FinishLocation{HomeID: req.HomeID, RoomID: req.RoomID},
		models.Paint{
			Name:     req.Name,
			Brand:    req.Brand,
			Color:    req.Color,
			Finish:   req.Finish,
			Code:     req.Code,
			Location: req.Location,
			Notes:    req.Notes,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaintDTO(*paint))
}

// DeletePaint deletes a paint
func (h *FinishHandler) DeletePaint(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.finishService.DeletePaint(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paint deleted successfully"})
}

// ListFloorings lists floorings of a home or room
func (h *FinishHandler) ListFloorings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	floorings, err := h.finishService.ListFloorings(c.Request.Context(), userID, queryLocation(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"floorings": dto.ToFlooringDTOs(floorings)})
}

// CreateFlooring records a flooring
func (h *FinishHandler) CreateFlooring(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type FlooringRequest struct {
		HomeID   *string `json:"home_id"`
		RoomID   *string `json:"room_id"`
		Name     string  `json:"name"`
		Type     string  `json:"type"`
		Material string  `json:"material"`
		Brand    string  `json:"brand"`
		Color    string  `json:"color"`
		Pattern  string  `json:"pattern"`
		Notes    string  `json:"notes"`
	}

	var req FlooringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	flooring, err := h.finishService.CreateFlooring(c.Request.Context(), userID,
		services.FinishLocation{HomeID: req.HomeID, RoomID: req.RoomID},
		models.Flooring{
			Name:     req.Name,
			Type:     req.Type,
			Material: req.Material,
			Brand:    req.Brand,
			Color:    req.Color,
			Pattern:  req.Pattern,
			Notes:    req.Notes,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFlooringDTO(*flooring))
}

// DeleteFlooring deletes a flooring
func (h *FinishHandler) DeleteFlooring(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.finishService.DeleteFlooring(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flooring deleted successfully"})
}
