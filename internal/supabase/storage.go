package supabase

import (
	"bytes"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadAsset stores a file under <kind>/<filename> and returns the
// storage path plus the public URL. Kind is "orders" for customer photos
// and "frames" for catalog imagery.
func (s *StorageClient) UploadAsset(kind, filename, contentType string, data []byte) (string, string, error) {
	storagePath := fmt.Sprintf("%s/%s", kind, filename)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteAsset(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
