package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/models"
)

// maxUploadBytes caps photo uploads at 10MB; anything larger is rejected
// before any state change.
const maxUploadBytes = 10 << 20

type UploadsHandler struct {
	storage AssetStore
	log     *logger.Logger
}

func NewUploadsHandler(storage AssetStore, log *logger.Logger) *UploadsHandler {
	return &UploadsHandler{
		storage: storage,
		log:     log,
	}
}

// UploadPhoto godoc
// @Summary     Upload a customer photo
// @Description Uploads the photo to be framed. Non-image files and files over 10MB are rejected before anything is stored.
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       photo formData file true "Photo to frame (image, max 10MB)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /uploads [post]
func (h *UploadsHandler) UploadPhoto(c *gin.Context) {
	h.upload(c, "orders", "photo")
}

// UploadFrameAsset godoc
// @Summary     Upload catalog imagery
// @Description Uploads a frame image or mockup for the catalog. Same type and size limits as customer photos.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       photo formData file true "Frame or mockup image (max 10MB)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/uploads [post]
func (h *UploadsHandler) UploadFrameAsset(c *gin.Context) {
	h.upload(c, "frames", "photo")
}

func (h *UploadsHandler) upload(c *gin.Context, kind, field string) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing file",
			Message: fmt.Sprintf("multipart field %q is required", field),
		})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file too large",
			Message: "file size must be less than 10MB",
		})
		return
	}

	data, contentType, err := readImage(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid file",
			Message: err.Error(),
		})
		return
	}

	filename := uuid.New().String() + extensionFor(fileHeader.Filename, contentType)
	storagePath, publicURL, err := h.storage.UploadAsset(kind, filename, contentType, data)
	if err != nil {
		h.log.Error("STORAGE", "upload of %s failed: %v", filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "failed to store file",
		})
		return
	}

	h.log.Info("STORAGE", "stored %s (%d bytes) at %s", fileHeader.Filename, fileHeader.Size, storagePath)
	c.JSON(http.StatusCreated, models.UploadResponse{
		Filename:    filename,
		Size:        fileHeader.Size,
		ContentType: contentType,
		StoragePath: storagePath,
		URL:         publicURL,
	})
}

// readImage reads the upload fully and verifies it is an image by
// sniffing the content, not trusting the client-reported type.
func readImage(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxUploadBytes {
		return nil, "", fmt.Errorf("file size must be less than 10MB")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("please upload an image file, got %s", contentType)
	}

	return data, contentType, nil
}

func extensionFor(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
