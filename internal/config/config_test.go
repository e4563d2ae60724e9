package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seacharts/oceanroute/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oceanroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("node_count: 5000\nlog_level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.NodeCount)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.Default().CutoffKM, cfg.CutoffKM)
}
