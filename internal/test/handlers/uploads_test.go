package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecraft-backend/internal/handlers"
	"framecraft-backend/internal/models"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func uploadsRouter(storage *fakeAssets, t *testing.T) *gin.Engine {
	h := handlers.NewUploadsHandler(storage, newTestLogger(t))

	router := gin.New()
	router.POST("/api/v1/uploads", h.UploadPhoto)
	router.POST("/api/v1/admin/uploads", h.UploadFrameAsset)
	return router
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	storage := &fakeAssets{}
	router := uploadsRouter(storage, t)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 64)...)
	body, contentType := multipartUpload(t, "photo", "family.png", content)

	req, _ := http.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image/png", resp.ContentType)
	assert.True(t, strings.HasPrefix(resp.StoragePath, "orders/"), resp.StoragePath)
	assert.True(t, strings.HasSuffix(resp.Filename, ".png"), resp.Filename)
	assert.NotEmpty(t, resp.URL)
	require.Len(t, storage.uploads, 1)
}

func TestUploadFrameAsset_UsesFramesPrefix(t *testing.T) {
	storage := &fakeAssets{}
	router := uploadsRouter(storage, t)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 64)...)
	body, contentType := multipartUpload(t, "photo", "oak.png", content)

	req, _ := http.NewRequest("POST", "/api/v1/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, storage.uploads, 1)
	assert.True(t, strings.HasPrefix(storage.uploads[0], "frames/"), storage.uploads[0])
}

func TestUploadPhoto_RejectsNonImage(t *testing.T) {
	storage := &fakeAssets{}
	router := uploadsRouter(storage, t)

	body, contentType := multipartUpload(t, "photo", "notes.txt", []byte("just some text, not an image"))

	req, _ := http.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image")
	assert.Empty(t, storage.uploads, "nothing should be stored for a rejected upload")
}

func TestUploadPhoto_RejectsOversized(t *testing.T) {
	storage := &fakeAssets{}
	router := uploadsRouter(storage, t)

	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x00}, 10<<20)...)
	body, contentType := multipartUpload(t, "photo", "huge.png", content)

	req, _ := http.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10MB")
	assert.Empty(t, storage.uploads)
}

func TestUploadPhoto_MissingFile(t *testing.T) {
	storage := &fakeAssets{}
	router := uploadsRouter(storage, t)

	req, _ := http.NewRequest("POST", "/api/v1/uploads", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, storage.uploads)
}
