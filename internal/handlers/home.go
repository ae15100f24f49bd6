package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/home-inventory-api/internal/dto"
	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

// HomeHandler serves homes, their shares and members.
type HomeHandler struct {
	homeService *services.HomeService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(homeService *services.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

type homeRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

func (r homeRequest) input() services.HomeInput {
	return services.HomeInput{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		Images:      r.Images,
	}
}

// ListHomes returns homes the user owns or has been shared, with their role
func (h *HomeHandler) ListHomes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	homes, err := h.homeService.ListHomes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"homes": dto.ToHomeAccessDTOs(homes)})
}

// CreateHome creates a home owned by the current user
func (h *HomeHandler) CreateHome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req homeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	home, err := h.homeService.CreateHome(c.Request.Context(), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHomeDTO(*home))
}

// GetHome returns a home with its rooms
func (h *HomeHandler) GetHome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	home, err := h.homeService.GetHome(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHomeDTO(*home))
}

// UpdateHome updates a home
func (h *HomeHandler) UpdateHome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req homeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	home, err := h.homeService.UpdateHome(c.Request.Context(), c.Param("id"), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHomeDTO(*home))
}

// DeleteHome deletes a home and everything in it
func (h *HomeHandler) DeleteHome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.homeService.DeleteHome(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Home deleted successfully"})
}

// ShareHome grants a user access to a home
func (h *HomeHandler) ShareHome(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type ShareRequest struct {
		Email string           `json:"email" binding:"required"`
		Role  models.ShareRole `json:"role" binding:"required"`
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	share, err := h.homeService.ShareHome(c.Request.Context(), c.Param("id"), userID, services.ShareHomeInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShareDTO(*share))
}

// ListShares lists the shares of a home
func (h *HomeHandler) ListShares(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	shares, err := h.homeService.ListShares(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shares": dto.ToShareDTOs(shares)})
}

// RemoveShare revokes a share. Sharees may remove themselves.
func (h *HomeHandler) RemoveShare(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.homeService.RemoveShare(c.Request.Context(), c.Param("id"), userID, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Share removed successfully"})
}

// ListMembers lists users with access to the home given by ?home_id=
func (h *HomeHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	homeID := c.Query("home_id")
	if homeID == "" {
		apierrors.BadRequest(c, "home_id is required")
		return
	}

	users, err := h.homeService.ListMembers(c.Request.Context(), homeID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserDTOs(users)})
}
