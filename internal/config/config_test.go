package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
app:
  name: pitch-oracle
  environment: development
  log_level: debug
server:
  port: 8090
  read_timeout_seconds: 5
  write_timeout_seconds: 10
  request_timeout_seconds: 15
  cors_origins:
    - "*"
artifacts:
  win_model_path: artifacts/win_probability_model.json
  margin_model_path: artifacts/margin_model.json
  venue_stats_path: artifacts/city_stats.json
predictor:
  min_score: 100
  max_score: 300
  cache_ttl_seconds: 300
  cache_max_size: 1000
metrics:
  enabled: true
  port: 9090
  path: /metrics
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "pitch-oracle", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "artifacts/city_stats.json", cfg.Artifacts.VenueStatsPath)
	assert.Equal(t, 100, cfg.Predictor.MinScore)
	assert.Equal(t, 300, cfg.Predictor.MaxScore)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_STATS_PATH", "custom/stats.json")

	body := "" +
		"app:\n  name: pitch-oracle\n  environment: staging\n  log_level: info\n" +
		"server:\n  port: 8090\n  read_timeout_seconds: 5\n  write_timeout_seconds: 10\n  request_timeout_seconds: 15\n  cors_origins: [\"*\"]\n" +
		"artifacts:\n  win_model_path: a.json\n  margin_model_path: b.json\n  venue_stats_path: ${TEST_STATS_PATH}\n" +
		"predictor:\n  min_score: 100\n  max_score: 300\n  cache_ttl_seconds: 300\n  cache_max_size: 1000\n" +
		"metrics:\n  enabled: true\n  port: 9090\n  path: /metrics\n"

	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, "custom/stats.json", cfg.Artifacts.VenueStatsPath)
}

func TestLoadWithDefaults(t *testing.T) {
	// Missing file is fine: defaults fill in the full configuration.
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "pitch-oracle", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Predictor.MinScore)
	assert.Equal(t, 300, cfg.Predictor.MaxScore)
	assert.Equal(t, 1000, cfg.Predictor.CacheMaxSize)
	assert.Equal(t, 9090, cfg.Metrics.Port)

	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad environment", func(c *Config) { c.App.Environment = "qa" }, true},
		{"bad log level", func(c *Config) { c.App.LogLevel = "trace" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty artifact path", func(c *Config) { c.Artifacts.VenueStatsPath = "" }, true},
		{"min above max", func(c *Config) { c.Predictor.MinScore = 400 }, true},
		{"port collision", func(c *Config) { c.Metrics.Port = c.Server.Port }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			tt.mutate(&c)
			err := Validate(&c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
