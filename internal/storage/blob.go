package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore holds uploaded illustration PDFs keyed by an opaque blob id.
type BlobStore interface {
	Store(ctx context.Context, data []byte) (string, error)
	Fetch(ctx context.Context, blobID string) ([]byte, error)
	Delete(ctx context.Context, blobID string) error
}

// fsBlobStore keeps blobs as flat files under a base directory.
type fsBlobStore struct {
	dir    string
	logger *slog.Logger
}

func NewFSBlobStore(dir string, logger *slog.Logger) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", dir, err)
	}
	return &fsBlobStore{dir: dir, logger: logger}, nil
}

func (s *fsBlobStore) Store(_ context.Context, data []byte) (string, error) {
	blobID := uuid.New().String()
	path, err := s.path(blobID)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("failed to write blob", "blob_id", blobID, "error", err)
		return "", fmt.Errorf("failed to store blob: %w", err)
	}
	s.logger.Debug("stored blob", "blob_id", blobID, "size_bytes", len(data))
	return blobID, nil
}

func (s *fsBlobStore) Fetch(_ context.Context, blobID string) ([]byte, error) {
	path, err := s.path(blobID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", blobID, err)
	}
	return data, nil
}

func (s *fsBlobStore) Delete(_ context.Context, blobID string) error {
	path, err := s.path(blobID)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed to delete blob", "blob_id", blobID, "error", err)
		return fmt.Errorf("failed to delete blob %s: %w", blobID, err)
	}
	return nil
}

// path round-trips the id through uuid parsing so arbitrary strings can never
// escape the blob directory.
func (s *fsBlobStore) path(blobID string) (string, error) {
	id, err := uuid.Parse(blobID)
	if err != nil {
		return "", fmt.Errorf("invalid blob id %q: %w", blobID, err)
	}
	return filepath.Join(s.dir, id.String()+".pdf"), nil
}
