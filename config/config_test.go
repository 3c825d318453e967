package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ensaremirerol/shacl-validate/config"
)

func TestLoadDefaultsWithNoFile(t *testing.T) {
	v, err := config.Load("")
	require.NoError(t, err)

	cfg := config.FromViper(v)
	require.Equal(t, "auto", cfg.Format)
	require.Equal(t, "text", cfg.OutputFormat)
	require.Equal(t, "Violation", cfg.MinSeverity)
	require.Equal(t, 0, cfg.Workers)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaclvalidate.yaml")
	content := "output:\n  format: json\n  min_severity: Warning\nengine:\n  workers: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := config.Load(path)
	require.NoError(t, err)

	cfg := config.FromViper(v)
	require.Equal(t, "json", cfg.OutputFormat)
	require.Equal(t, "Warning", cfg.MinSeverity)
	require.Equal(t, 4, cfg.Workers)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("SHACLVALIDATE_OUTPUT_MIN_SEVERITY", "Info")

	v, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "Info", v.GetString(config.KeySeverity))
}
