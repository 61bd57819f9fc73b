package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/pricing"
	"framecraft-backend/internal/services"
	"framecraft-backend/internal/supabase"
)

// Store interfaces cover the slices of the database client each handler
// touches, so tests can swap in fakes.

type CatalogStore interface {
	ListFrameStyles() ([]models.FrameStyle, error)
	GetFrameStyle(frameStyleID uuid.UUID) (*models.FrameStyle, error)
	CreateFrameStyle(fs *models.FrameStyle) (*models.FrameStyle, error)
	UpdateFrameStyle(frameStyleID uuid.UUID, fs *models.FrameStyle) (*models.FrameStyle, error)
	DeleteFrameStyle(frameStyleID uuid.UUID) error
}

type OrderStore interface {
	ListOrders() ([]models.OrderWithFrameStyle, error)
	GetOrder(orderID uuid.UUID) (*models.OrderWithFrameStyle, error)
	GetOrderStats() (*supabase.OrderStats, error)
}

type AssetStore interface {
	UploadAsset(kind, filename, contentType string, data []byte) (string, string, error)
}

// respondError maps the error kinds of the ordering flow onto HTTP
// responses: incomplete draft -> 422 with the step to go back to,
// missing row -> 404, bad input -> 400, write failure -> generic 500
// with prior state unchanged.
func respondError(c *gin.Context, err error) {
	var incomplete *orders.IncompleteError
	if errors.As(err, &incomplete) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "order draft incomplete",
			Message: incomplete.Error(),
			Step:    string(incomplete.Step),
		})
		return
	}

	var unknownSize *pricing.UnknownSizeError
	if errors.As(err, &unknownSize) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "unknown frame size",
			Message: unknownSize.Error(),
		})
		return
	}

	var invalid *services.InvalidValueError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid value",
			Message: invalid.Error(),
		})
		return
	}

	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "request failed",
		Message: err.Error(),
	})
}
