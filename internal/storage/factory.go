package storage

import (
	"context"
	"fmt"

	"flightsite/internal/config"
)

// DeploymentMode represents the snapshot publishing backend
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// ModeFromConfig picks GCS when a bucket is configured, local otherwise
func ModeFromConfig(cfg *config.Config) DeploymentMode {
	if cfg.GCSBucket != "" {
		return DeploymentGCS
	}
	return DeploymentLocal
}

// NewClient creates a snapshot storage client for the given deployment mode
func NewClient(ctx context.Context, mode DeploymentMode, cfg *config.Config) (Client, error) {
	switch mode {
	case DeploymentLocal:
		dir := cfg.LocalSnapshotsDir
		if dir == "" {
			dir = "snapshots"
		}
		client, err := NewLocalClient(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local snapshot storage: %w", err)
		}
		return client, nil

	case DeploymentGCS:
		client, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS snapshot storage: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", mode)
	}
}
