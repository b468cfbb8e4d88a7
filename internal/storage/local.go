package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LocalClient publishes snapshots to the local file system
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local snapshot publisher rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile writes a snapshot file under the folder for (handle, timestamp)
func (l *LocalClient) StoreFile(ctx context.Context, fileData []byte, handle, filename string, timestamp time.Time) error {
	filePath := filepath.Join(l.baseDir, SnapshotFolderPath(handle, timestamp), filename)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(filePath), err)
	}
	if err := os.WriteFile(filePath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}

// GetFile retrieves a snapshot file by path relative to the base directory
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// ListSnapshots lists published snapshot pages for a pilot, newest first
func (l *LocalClient) ListSnapshots(ctx context.Context, handle string, limit int) ([]string, error) {
	marker := "ProfileSnapshot-" + handle + "-"

	var paths []string
	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.Name() != "index.html" {
			return nil
		}
		relPath, relErr := filepath.Rel(l.baseDir, path)
		if relErr != nil {
			return nil
		}
		if strings.Contains(relPath, marker) {
			paths = append(paths, filepath.ToSlash(relPath))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk snapshots directory: %w", err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}
