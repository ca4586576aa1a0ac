package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticoapp/portico/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "app/build", cfg.Static.Path)
	assert.Equal(t, "index.html", cfg.Static.Entry)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.CORS.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	// Create a temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
env: prod
server:
  host: 127.0.0.1
  port: 9000
static:
  path: /srv/app/build
  entry: main.html
cors:
  enabled: true
  allowed_origins:
    - https://example.com
log:
  level: debug
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/app/build", cfg.Static.Path)
	assert.Equal(t, "main.html", cfg.Static.Entry)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	baseContent := `
server:
  port: 8000
static:
  path: app/build
  entry: index.html
log:
  level: info
`
	require.NoError(t, os.WriteFile(basePath, []byte(baseContent), 0o644))

	// Later files override earlier ones
	overridePath := filepath.Join(tmpDir, "override.yaml")
	overrideContent := `
server:
  port: 9000
`
	require.NoError(t, os.WriteFile(overridePath, []byte(overrideContent), 0o644))

	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "app/build", cfg.Static.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 99999\n"), 0o644))

	_, err := config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: verbose\n"), 0o644))

	_, err := config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}

func TestLoad_EmptyStaticPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("static:\n  path: \"\"\n"), 0o644))

	_, err := config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORTICO_SERVER_PORT", "8123")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestWithContext_RoundTrip(t *testing.T) {
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	ctx := config.WithContext(t.Context(), cfg)

	got, err := config.FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := config.FromContext(t.Context())
	assert.Error(t, err)
}
