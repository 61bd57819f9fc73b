package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/pricing"
)

type FramesHandler struct {
	catalog CatalogStore
}

func NewFramesHandler(catalog CatalogStore) *FramesHandler {
	return &FramesHandler{
		catalog: catalog,
	}
}

// ListSizes godoc
// @Summary     List frame sizes
// @Description Returns the available frame sizes with display labels and price multipliers, in physical-size order
// @Tags        frames
// @Produce     json
// @Success     200 {array} models.SizeOption
// @Router      /sizes [get]
func (h *FramesHandler) ListSizes(c *gin.Context) {
	sizes := pricing.Sizes()
	options := make([]models.SizeOption, len(sizes))
	for i, size := range sizes {
		spec, _ := pricing.Spec(size)
		options[i] = models.SizeOption{
			Size:       string(size),
			Label:      spec.Label,
			Multiplier: spec.Multiplier,
		}
	}
	c.JSON(http.StatusOK, options)
}

// ListFrames godoc
// @Summary     List frame styles
// @Description Returns the catalog ordered by base price
// @Tags        frames
// @Produce     json
// @Success     200 {object} models.FrameStyleListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /frames [get]
func (h *FramesHandler) ListFrames(c *gin.Context) {
	styles, err := h.catalog.ListFrameStyles()
	if err != nil {
		respondError(c, err)
		return
	}

	frames := make([]models.FrameStyleResponse, len(styles))
	for i := range styles {
		frames[i] = models.NewFrameStyleResponse(&styles[i])
	}

	c.JSON(http.StatusOK, models.FrameStyleListResponse{Frames: frames})
}

// GetFrame godoc
// @Summary     Get a frame style
// @Tags        frames
// @Produce     json
// @Param       frame_id path string true "Frame style ID (UUID)"
// @Success     200 {object} models.FrameStyleResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /frames/{frame_id} [get]
func (h *FramesHandler) GetFrame(c *gin.Context) {
	frameStyleID, err := uuid.Parse(c.Param("frame_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid frame id"})
		return
	}

	frame, err := h.catalog.GetFrameStyle(frameStyleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewFrameStyleResponse(frame))
}

// Quote godoc
// @Summary     Price quote
// @Description Computes base price times size multiplier for a frame style. The value is informational; the binding snapshot happens at order submission.
// @Tags        frames
// @Produce     json
// @Param       frame_id path string true "Frame style ID (UUID)"
// @Param       size query string true "Frame size key (e.g. 16x20)"
// @Success     200 {object} models.QuoteResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /frames/{frame_id}/quote [get]
func (h *FramesHandler) Quote(c *gin.Context) {
	frameStyleID, err := uuid.Parse(c.Param("frame_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid frame id"})
		return
	}

	frame, err := h.catalog.GetFrameStyle(frameStyleID)
	if err != nil {
		respondError(c, err)
		return
	}

	size := pricing.FrameSize(c.Query("size"))
	spec, err := pricing.Spec(size)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := pricing.Total(frame.BasePrice, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{
		FrameStyleID: frame.ID.String(),
		FrameSize:    string(size),
		BasePrice:    frame.BasePrice,
		Multiplier:   spec.Multiplier,
		TotalPrice:   total,
		Display:      pricing.FormatCurrency(total),
	})
}
