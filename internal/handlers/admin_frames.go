package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/models"
	"framecraft-backend/internal/supabase"
)

type AdminFramesHandler struct {
	catalog CatalogStore
	log     *logger.Logger
}

func NewAdminFramesHandler(catalog CatalogStore, log *logger.Logger) *AdminFramesHandler {
	return &AdminFramesHandler{
		catalog: catalog,
		log:     log,
	}
}

func frameStyleFromRequest(req *models.FrameStyleRequest) *models.FrameStyle {
	fs := &models.FrameStyle{
		Name:        req.Name,
		Description: supabase.NullString(req.Description),
		BasePrice:   req.BasePrice,
		Material:    supabase.NullString(req.Material),
		Color:       supabase.NullString(req.Color),
		ImageURL:    supabase.NullString(req.ImageURL),
		MockupURL:   supabase.NullString(req.MockupURL),
	}
	if req.WidthInches != nil {
		fs.WidthInches.Float64 = *req.WidthInches
		fs.WidthInches.Valid = true
	}
	return fs
}

// CreateFrame godoc
// @Summary     Create a frame style
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.FrameStyleRequest true "Frame style"
// @Success     201 {object} models.FrameStyleResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/frames [post]
func (h *AdminFramesHandler) CreateFrame(c *gin.Context) {
	var req models.FrameStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	created, err := h.catalog.CreateFrameStyle(frameStyleFromRequest(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("CATALOG", "frame style %q created at %s", created.Name, created.ID)
	c.JSON(http.StatusCreated, models.NewFrameStyleResponse(created))
}

// UpdateFrame godoc
// @Summary     Update a frame style
// @Description Edits a catalog entry. Existing orders keep their snapshotted total even when the base price changes.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       frame_id path string true "Frame style ID (UUID)"
// @Param       request body models.FrameStyleRequest true "Frame style"
// @Success     200 {object} models.FrameStyleResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/frames/{frame_id} [put]
func (h *AdminFramesHandler) UpdateFrame(c *gin.Context) {
	frameStyleID, err := uuid.Parse(c.Param("frame_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid frame id"})
		return
	}

	var req models.FrameStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	updated, err := h.catalog.UpdateFrameStyle(frameStyleID, frameStyleFromRequest(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewFrameStyleResponse(updated))
}

// DeleteFrame godoc
// @Summary     Delete a frame style
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       frame_id path string true "Frame style ID (UUID)"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/frames/{frame_id} [delete]
func (h *AdminFramesHandler) DeleteFrame(c *gin.Context) {
	frameStyleID, err := uuid.Parse(c.Param("frame_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid frame id"})
		return
	}

	if err := h.catalog.DeleteFrameStyle(frameStyleID); err != nil {
		respondError(c, err)
		return
	}

	h.log.Info("CATALOG", "frame style %s deleted", frameStyleID)
	c.JSON(http.StatusOK, gin.H{"message": "frame style deleted"})
}
