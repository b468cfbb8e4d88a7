package config

import (
	"os"
	"testing"
)

func TestGetVersion(t *testing.T) {
	originalVersion := os.Getenv("APP_VERSION")
	defer func() {
		if originalVersion != "" {
			os.Setenv("APP_VERSION", originalVersion)
		} else {
			os.Unsetenv("APP_VERSION")
		}
	}()

	os.Setenv("APP_VERSION", "1.2.3")
	if got := GetVersion(); got != "1.2.3" {
		t.Errorf("Expected version '1.2.3' from APP_VERSION, got '%s'", got)
	}

	os.Unsetenv("APP_VERSION")
	if got := GetVersion(); got == "" {
		t.Error("Expected non-empty fallback version")
	}
}

func TestGetVersionFallback(t *testing.T) {
	os.Unsetenv("APP_VERSION")

	tempDir := t.TempDir()
	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(tempDir)

	if got := GetVersion(); got != "0.1.0-dev" {
		t.Errorf("Expected fallback version '0.1.0-dev', got '%s'", got)
	}
}

func TestGetVersionFromFile(t *testing.T) {
	os.Unsetenv("APP_VERSION")

	tempDir := t.TempDir()
	if err := os.WriteFile(tempDir+"/VERSION", []byte("2.4.0\n"), 0644); err != nil {
		t.Fatalf("Failed to create test VERSION file: %v", err)
	}

	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(tempDir)

	if got := GetVersion(); got != "2.4.0" {
		t.Errorf("Expected version '2.4.0' from VERSION file, got '%s'", got)
	}
}
