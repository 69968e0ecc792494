package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileValuesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "scheduler"

[calendar]
timezone = "Europe/Berlin"
default_slot_duration = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Calendar.DefaultSlotDuration)
	assert.Equal(t, "09:00", cfg.Calendar.DefaultWorkStart)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
password = "from-file"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_InvalidEnv(t *testing.T) {
	path := writeConfig(t, ``)
	t.Setenv("DB_PORT", "five")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad timezone", mutate: func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }},
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "zero slot", mutate: func(c *Config) { c.Calendar.DefaultSlotDuration = 0 }},
		{name: "inverted work hours", mutate: func(c *Config) { c.Calendar.DefaultWorkStart = "18:00" }},
		{name: "malformed work hours", mutate: func(c *Config) { c.Calendar.DefaultWorkEnd = "5pm" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	require.NoError(t, Default().Validate())
}
