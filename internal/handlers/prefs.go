package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/prefs"
)

const deviceIDHeader = "X-Device-ID"

// PrefsHandler serves the per-device state the storefront keeps locally:
// catalog favorites and notification read-state, keyed by a
// client-chosen device id.
type PrefsHandler struct {
	store *prefs.Store
}

func NewPrefsHandler(store *prefs.Store) *PrefsHandler {
	return &PrefsHandler{
		store: store,
	}
}

func deviceID(c *gin.Context) (string, bool) {
	id := c.GetHeader(deviceIDHeader)
	if !prefs.ValidDeviceID(id) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid device id",
			Message: "X-Device-ID header is required (letters, digits, - and _, max 64 chars)",
		})
		return "", false
	}
	return id, true
}

// GetFavorites godoc
// @Summary     List favorite frames for a device
// @Tags        prefs
// @Produce     json
// @Param       X-Device-ID header string true "Device identifier"
// @Success     200 {object} models.FavoritesResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /prefs/favorites [get]
func (h *PrefsHandler) GetFavorites(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FavoritesResponse{Favorites: p.Favorites})
}

// SetFavorites godoc
// @Summary     Replace the favorites list for a device
// @Tags        prefs
// @Accept      json
// @Produce     json
// @Param       X-Device-ID header string true "Device identifier"
// @Param       request body models.FavoritesRequest true "Frame style ids"
// @Success     200 {object} models.FavoritesResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /prefs/favorites [put]
func (h *PrefsHandler) SetFavorites(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	var req models.FavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.store.SetFavorites(id, req.Favorites); err != nil {
		respondError(c, err)
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FavoritesResponse{Favorites: p.Favorites})
}

// ToggleFavorite godoc
// @Summary     Toggle a favorite frame for a device
// @Tags        prefs
// @Produce     json
// @Param       X-Device-ID header string true "Device identifier"
// @Param       frame_id path string true "Frame style ID"
// @Success     200 {object} map[string]bool
// @Failure     400 {object} models.ErrorResponse
// @Router      /prefs/favorites/{frame_id}/toggle [post]
func (h *PrefsHandler) ToggleFavorite(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	favorite, err := h.store.ToggleFavorite(id, c.Param("frame_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

// GetNotificationsRead godoc
// @Summary     List read notification ids for a device
// @Tags        prefs
// @Produce     json
// @Param       X-Device-ID header string true "Device identifier"
// @Success     200 {object} models.NotificationsReadResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /prefs/notifications/read [get]
func (h *PrefsHandler) GetNotificationsRead(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NotificationsReadResponse{Read: p.NotificationsRead})
}

// MarkNotificationsRead godoc
// @Summary     Mark notifications as read for a device
// @Tags        prefs
// @Accept      json
// @Produce     json
// @Param       X-Device-ID header string true "Device identifier"
// @Param       request body models.MarkReadRequest true "Notification ids"
// @Success     200 {object} models.NotificationsReadResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /prefs/notifications/read [post]
func (h *PrefsHandler) MarkNotificationsRead(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}

	var req models.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	read, err := h.store.MarkNotificationsRead(id, req.NotificationIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NotificationsReadResponse{Read: read})
}
