package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sonnet", cfg.Model)
	assert.Equal(t, "default", cfg.PermissionMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Demo)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPDECK_MODEL", "opus")
	t.Setenv("OPDECK_PERMISSION_MODE", "plan")
	t.Setenv("OPDECK_DEMO", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "opus", cfg.Model)
	assert.Equal(t, "plan", cfg.PermissionMode)
	assert.True(t, cfg.Demo)
}

func TestLoadConfigRejectsUnknownIDs(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("OPDECK_MODEL", "turbo-9000")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("OPDECK_MODEL", "sonnet")
	t.Setenv("OPDECK_PERMISSION_MODE", "yolo")
	_, err = LoadConfig()
	assert.Error(t, err)
}
