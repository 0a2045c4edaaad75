package supabase

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	baseURL := trimSlash(supabaseURL)
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadFile stores data at storagePath and returns its public URL.
func (s *StorageClient) UploadFile(ctx context.Context, storagePath string, data []byte, contentType string) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return PublicURL(s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// PublicURL is the public object URL for a file in a public bucket.
func PublicURL(baseURL, bucket, storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", trimSlash(baseURL), bucket, storagePath)
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DesignPath is the object key for an uploaded design image.
func DesignPath(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("designs/%s%s", uuid.New().String(), ext)
}

// MockupPath is the object key of a saved mockup:
// mockups/mockup_{sku}_{color}_{last 6 of mockup id}.png
func MockupPath(itemSKU, colorName, mockupID string) string {
	suffix := mockupID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("mockups/mockup_%s_%s_%s.png",
		unsafeKeyChars.ReplaceAllString(itemSKU, "_"),
		unsafeKeyChars.ReplaceAllString(colorName, "_"),
		suffix)
}

func trimSlash(u string) string {
	return strings.TrimRight(u, "/")
}
