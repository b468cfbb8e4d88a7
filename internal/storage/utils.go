package storage

import (
	"fmt"
	"strings"
	"time"
)

// SnapshotFolderPath generates a consistent folder path for a published
// profile snapshot.
// Format: YYYY/MM/DD/ProfileSnapshot-<handle>-YYYY-MM-DD-HH-MM-SS
func SnapshotFolderPath(handle string, timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/ProfileSnapshot-%s-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		handle,
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
