package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the logbook service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Persistence
	DBPath string `env:"DB_PATH,default=./flightsite.db"`

	// Snapshot publishing (optional GCS for deployed environments)
	GCPProjectID      string `env:"GCP_PROJECT_ID"`
	GCSBucket         string `env:"GCS_BUCKET"`
	LocalSnapshotsDir string `env:"LOCAL_SNAPSHOTS_DIR,default=./snapshots"`

	// Airport index
	AirportsCSVURL   string `env:"AIRPORTS_CSV_URL,default=https://davidmegginson.github.io/ourairports-data/airports.csv"`
	AirportIndexPath string `env:"AIRPORT_INDEX_PATH,default=./airports.json"`

	// Demo profile
	DemoSeed int64 `env:"DEMO_SEED,default=20240401"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
