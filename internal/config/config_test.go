package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100*time.Millisecond, cfg.Throttle.MinInterval)
	assert.Equal(t, 80, cfg.Throttle.MaxPerWindow)
	assert.Equal(t, 10*time.Second, cfg.Throttle.WindowSize)
	assert.Equal(t, 3, cfg.Throttle.MaxRetries)
	assert.Equal(t, time.Second, cfg.Throttle.InitialBackoff)
	assert.Equal(t, 200*time.Millisecond, cfg.Sync.PollInterval)
	assert.Equal(t, 60*time.Second, cfg.Sync.PollTimeout)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routesync.yaml")
	content := `
server_url: http://localhost:9999
db_path: /tmp/cache.db
throttle:
  min_interval: 250ms
  max_per_window: 40
sync:
  poll_interval: 1s
engine:
  grouping_threshold: 0.8
signature:
  max_points: 80
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.ServerURL)
	assert.Equal(t, "/tmp/cache.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.Throttle.MinInterval)
	assert.Equal(t, 40, cfg.Throttle.MaxPerWindow)
	assert.Equal(t, time.Second, cfg.Sync.PollInterval)
	assert.Equal(t, 0.8, cfg.Engine.GroupingThreshold)
	assert.Equal(t, 80, cfg.Signature.MaxPoints)
	// не указанные в файле значения остаются по умолчанию
	assert.Equal(t, 10*time.Second, cfg.Throttle.WindowSize)
	assert.Equal(t, 50, cfg.Signature.MinPoints)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("throttle: [1, 2"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ROUTESYNC_SERVER_URL":     "http://env",
		"ROUTESYNC_POLL_TIMEOUT":   "5s",
		"ROUTESYNC_MAX_PER_WINDOW": "12",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, "http://env", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Sync.PollTimeout)
	assert.Equal(t, 12, cfg.Throttle.MaxPerWindow)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{key: "ROUTESYNC_POLL_INTERVAL", value: "soon"},
		{key: "ROUTESYNC_MAX_PER_WINDOW", value: "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			})
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty server", mutate: func(c *Config) { c.ServerURL = "" }},
		{name: "zero window cap", mutate: func(c *Config) { c.Throttle.MaxPerWindow = 0 }},
		{name: "zero window", mutate: func(c *Config) { c.Throttle.WindowSize = 0 }},
		{name: "negative retries", mutate: func(c *Config) { c.Throttle.MaxRetries = -1 }},
		{name: "zero backoff", mutate: func(c *Config) { c.Throttle.InitialBackoff = 0 }},
		{name: "zero poll interval", mutate: func(c *Config) { c.Sync.PollInterval = 0 }},
		{name: "grouping threshold above one", mutate: func(c *Config) { c.Engine.GroupingThreshold = 1.5 }},
		{name: "max points too small", mutate: func(c *Config) { c.Signature.MaxPoints = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
