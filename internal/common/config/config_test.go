package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "ceelo:", cfg.RedisKeyPrefix)
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, 20000, cfg.MaxDraws)
	assert.Empty(t, cfg.InitialFriends)
	assert.False(t, cfg.DiscordEnabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "ADMIN_PASSWORD=fromfile\nINITIAL_FRIENDS=Ann, Bo ,,Cy\nCEELO_MAX_DRAWS=50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("ADMIN_PASSWORD", "")
	os.Unsetenv("ADMIN_PASSWORD")
	t.Setenv("INITIAL_FRIENDS", "")
	os.Unsetenv("INITIAL_FRIENDS")
	t.Setenv("CEELO_MAX_DRAWS", "")
	os.Unsetenv("CEELO_MAX_DRAWS")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fromfile", cfg.AdminPassword)
	assert.Equal(t, []string{"Ann", "Bo", "Cy"}, cfg.InitialFriends)
	assert.Equal(t, 50, cfg.MaxDraws)
}

func TestValidate(t *testing.T) {
	base := Config{AdminPassword: "x", AdminSessionTTL: time.Hour, MaxDraws: 1}
	require.NoError(t, base.Validate())

	noPassword := base
	noPassword.AdminPassword = ""
	assert.Error(t, noPassword.Validate())

	noTTL := base
	noTTL.AdminSessionTTL = 0
	assert.Error(t, noTTL.Validate())

	noDraws := base
	noDraws.MaxDraws = 0
	assert.Error(t, noDraws.Validate())
}
