package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(cfg *Config) {
				if cfg.Port != "8982" {
					t.Errorf("Expected default Port to be '8982', got '%s'", cfg.Port)
				}
				if cfg.DBPath != "./flightsite.db" {
					t.Errorf("Expected default DBPath to be './flightsite.db', got '%s'", cfg.DBPath)
				}
				if cfg.LocalSnapshotsDir != "./snapshots" {
					t.Errorf("Expected default LocalSnapshotsDir to be './snapshots', got '%s'", cfg.LocalSnapshotsDir)
				}
				if cfg.GCSBucket != "" {
					t.Errorf("Expected GCSBucket to default empty, got '%s'", cfg.GCSBucket)
				}
				if cfg.AirportIndexPath != "./airports.json" {
					t.Errorf("Expected default AirportIndexPath to be './airports.json', got '%s'", cfg.AirportIndexPath)
				}
				if cfg.DemoSeed != 20240401 {
					t.Errorf("Expected default DemoSeed to be 20240401, got %d", cfg.DemoSeed)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default Environment to be 'development', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "text" {
					t.Errorf("Expected default LogFormat to be 'text', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"PORT":                "9000",
				"DB_PATH":             "/var/lib/flightsite/data.db",
				"GCP_PROJECT_ID":      "test-project",
				"GCS_BUCKET":          "test-bucket",
				"LOCAL_SNAPSHOTS_DIR": "/custom/snapshots",
				"AIRPORTS_CSV_URL":    "https://example.com/airports.csv",
				"AIRPORT_INDEX_PATH":  "/custom/airports.json",
				"DEMO_SEED":           "42",
				"ENVIRONMENT":         "production",
				"LOG_LEVEL":           "debug",
				"LOG_FORMAT":          "json",
			},
			validate: func(cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port to be '9000', got '%s'", cfg.Port)
				}
				if cfg.DBPath != "/var/lib/flightsite/data.db" {
					t.Errorf("Expected custom DBPath, got '%s'", cfg.DBPath)
				}
				if cfg.GCPProjectID != "test-project" {
					t.Errorf("Expected GCPProjectID to be 'test-project', got '%s'", cfg.GCPProjectID)
				}
				if cfg.GCSBucket != "test-bucket" {
					t.Errorf("Expected GCSBucket to be 'test-bucket', got '%s'", cfg.GCSBucket)
				}
				if cfg.LocalSnapshotsDir != "/custom/snapshots" {
					t.Errorf("Expected LocalSnapshotsDir to be '/custom/snapshots', got '%s'", cfg.LocalSnapshotsDir)
				}
				if cfg.AirportsCSVURL != "https://example.com/airports.csv" {
					t.Errorf("Expected custom AirportsCSVURL, got '%s'", cfg.AirportsCSVURL)
				}
				if cfg.AirportIndexPath != "/custom/airports.json" {
					t.Errorf("Expected custom AirportIndexPath, got '%s'", cfg.AirportIndexPath)
				}
				if cfg.DemoSeed != 42 {
					t.Errorf("Expected DemoSeed to be 42, got %d", cfg.DemoSeed)
				}
				if cfg.Environment != "production" {
					t.Errorf("Expected Environment to be 'production', got '%s'", cfg.Environment)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("Expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "json" {
					t.Errorf("Expected LogFormat to be 'json', got '%s'", cfg.LogFormat)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load(context.Background())
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			tt.validate(cfg)

			clearEnv()
		})
	}
}

func TestLoadDefaultAirportsURL(t *testing.T) {
	clearEnv()

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "https://davidmegginson.github.io/ourairports-data/airports.csv"
	if cfg.AirportsCSVURL != expected {
		t.Errorf("Expected AirportsCSVURL to be '%s', got '%s'", expected, cfg.AirportsCSVURL)
	}
}

func TestLoadInvalidSeed(t *testing.T) {
	clearEnv()
	os.Setenv("DEMO_SEED", "not-a-number")

	_, err := Load(context.Background())
	if err == nil {
		t.Error("Expected error for non-numeric DEMO_SEED")
	}

	clearEnv()
}

// Helper function to clear relevant environment variables
func clearEnv() {
	envVars := []string{
		"PORT", "DB_PATH", "GCP_PROJECT_ID", "GCS_BUCKET", "LOCAL_SNAPSHOTS_DIR",
		"AIRPORTS_CSV_URL", "AIRPORT_INDEX_PATH", "DEMO_SEED",
		"ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}
