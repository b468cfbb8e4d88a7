package storage

import (
	"context"
	"time"
)

// Client stores and retrieves published profile snapshot files
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a snapshot file in the folder for (handle, timestamp)
	StoreFile(ctx context.Context, fileData []byte, handle, filename string, timestamp time.Time) error

	// GetFile retrieves a file by its full path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists published snapshot pages for a pilot, newest first
	ListSnapshots(ctx context.Context, handle string, limit int) ([]string, error)
}
