// Package config resolves runtime configuration from the environment.
// Precedence is flags > environment > defaults; flags are applied by the CLI
// layer on top of the Config loaded here. There is no config file — a driver
// installer has nothing persistent to store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// EnvHome overrides the getdriver home directory; binaries land in its
	// bin/ subdirectory.
	EnvHome = "GETDRIVER_HOME"
	// EnvGitHubToken authenticates release-tag lookups, lifting GitHub's
	// unauthenticated rate limit.
	EnvGitHubToken = "GETDRIVER_GITHUB_TOKEN"
)

// Config holds the resolved runtime configuration.
type Config struct {
	OutputDir       string
	GitHubToken     string
	DownloadTimeout time.Duration
	CommandTimeout  time.Duration
}

// Load resolves configuration from the environment with defaults applied.
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken:     os.Getenv(EnvGitHubToken),
		DownloadTimeout: 5 * time.Minute,
		CommandTimeout:  10 * time.Second,
	}

	if home := os.Getenv(EnvHome); home != "" {
		cfg.OutputDir = filepath.Join(home, "bin")
		return cfg, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.OutputDir = filepath.Join(userHome, ".getdriver", "bin")

	return cfg, nil
}
