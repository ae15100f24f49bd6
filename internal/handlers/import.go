package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

// ImportHandler serves bulk import and export.
type ImportHandler struct {
	importService *services.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService *services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Import restores homes from a backup document
func (h *ImportHandler) Import(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var backup services.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.importService.Import(c.Request.Context(), userID, backup)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Export returns every home the user owns with its contents
func (h *ImportHandler) Export(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	backup, err := h.importService.Export(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="homes-export.json"`)
	c.JSON(http.StatusOK, backup)
}
