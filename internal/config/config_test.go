package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvHome, "")
	t.Setenv(EnvGitHubToken, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".getdriver", "bin"), cfg.OutputDir)
	assert.Empty(t, cfg.GitHubToken)
	assert.NotZero(t, cfg.DownloadTimeout)
	assert.NotZero(t, cfg.CommandTimeout)
}

func TestLoadHomeOverride(t *testing.T) {
	t.Setenv(EnvHome, "/opt/getdriver")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/getdriver", "bin"), cfg.OutputDir)
}

func TestLoadGitHubToken(t *testing.T) {
	t.Setenv(EnvHome, "/opt/getdriver")
	t.Setenv(EnvGitHubToken, "ghp_example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ghp_example", cfg.GitHubToken)
}
