package handlers

import (
	"errors"
	"fmt"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/home-inventory-api/internal/constants"
	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/middleware"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

var log = logger.New("handlers")

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFoundOrForbidden),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "")
	case errors.As(err, &validation):
		apierrors.BadRequestWithDetails(c, validation.Error(), gin.H{"field": validation.Field})
	case services.IsValidation(err),
		errors.Is(err, services.ErrInvalidEmail):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrImportConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrAINoValidTasks):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrTransientStore),
		errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		log.TraceFromContext(c.Request.Context()).Er("unhandled error", err, "path", c.FullPath())
		apierrors.InternalError(c, "")
	}
}

// currentUser returns the authenticated user id, answering 401 when absent.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
	}
	return userID, ok
}
