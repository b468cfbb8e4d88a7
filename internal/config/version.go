package config

import (
	"os"
	"strings"
)

// GetVersion returns the version set by CI/CD, or the VERSION file contents,
// or a development fallback.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return "0.1.0-dev"
}
