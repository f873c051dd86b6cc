package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory with a clean environment.
func inTempDir(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"WEATHERMAN_LOG_LEVEL",
		"WEATHERMAN_ENV",
		"WEATHERMAN_DISCOVERY_LIMIT",
		"WEATHERMAN_COLOR",
		"WEATHERMAN_EXPORT_DIR",
		"NO_COLOR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(originalDir) })

	return tmpDir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "weatherman", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 0, cfg.Discovery.Limit)
	assert.True(t, cfg.Chart.Color)
	assert.Equal(t, "", cfg.Export.ExcelDir)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := inTempDir(t)
	exportDir := filepath.Join(tmpDir, "reports")
	require.NoError(t, os.Mkdir(exportDir, 0755))

	configContent := `
app:
  name: "weatherman-test"
  env: "production"
  log_level: "debug"

discovery:
  limit: 2

chart:
  color: false

export:
  excel_dir: "` + exportDir + `"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(configContent), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "weatherman-test", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 2, cfg.Discovery.Limit)
	assert.False(t, cfg.Chart.Color)
	assert.Equal(t, exportDir, cfg.Export.ExcelDir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tmpDir := inTempDir(t)

	t.Setenv("WEATHERMAN_LOG_LEVEL", "error")
	t.Setenv("WEATHERMAN_ENV", "production")
	t.Setenv("WEATHERMAN_DISCOVERY_LIMIT", "3")
	t.Setenv("WEATHERMAN_COLOR", "false")
	t.Setenv("WEATHERMAN_EXPORT_DIR", tmpDir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 3, cfg.Discovery.Limit)
	assert.False(t, cfg.Chart.Color)
	assert.Equal(t, tmpDir, cfg.Export.ExcelDir)
}

func TestLoad_DotEnv(t *testing.T) {
	tmpDir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("WEATHERMAN_DISCOVERY_LIMIT=5\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("WEATHERMAN_DISCOVERY_LIMIT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Discovery.Limit)
}

func TestLoad_NoColor(t *testing.T) {
	inTempDir(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Chart.Color)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad limit", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("WEATHERMAN_DISCOVERY_LIMIT", "many")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("WEATHERMAN_DISCOVERY_LIMIT", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "discovery limit cannot be negative")
	})

	t.Run("missing export dir", func(t *testing.T) {
		tmpDir := inTempDir(t)
		t.Setenv("WEATHERMAN_EXPORT_DIR", filepath.Join(tmpDir, "missing"))

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "export directory")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		tmpDir := inTempDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("app: [unclosed"), 0644))

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(&Config{}))
	assert.Error(t, validateConfig(&Config{Discovery: DiscoveryConfig{Limit: -2}}))

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, validateConfig(&Config{Export: ExportConfig{ExcelDir: file}}))
}
