package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "centavo.yaml")
	cfg := Default("Maria", "USD")
	cfg.Defaults.IncludeLinked = true
	cfg.Git.AutoCommit = false

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefault(t *testing.T) {
	cfg := Default("Maria", "")
	assert.Equal(t, "Maria", cfg.Profile.Name)
	assert.Equal(t, "PEN", cfg.Profile.Currency)
	assert.False(t, cfg.Defaults.IncludeLinked)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "centavo.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profile: [not a map"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
