package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch"
	"github.com/katalvlaran/gridsearch/config"
	"github.com/katalvlaran/gridsearch/logging"
)

var allKeys = []string{
	config.EnvSize, config.EnvAlgorithm, config.EnvStepDelay, config.EnvHTTPAddr,
	config.EnvBaseURL, config.EnvGinMode, config.EnvLogLevel, config.EnvMaxCells,
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, gridsearch.AStar, cfg.Algorithm)
	assert.Equal(t, 10*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, 40000, cfg.MaxCells)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSize, "21")
	t.Setenv(config.EnvAlgorithm, "d")
	t.Setenv(config.EnvStepDelay, "0s")
	t.Setenv(config.EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(config.EnvBaseURL, "/grid")
	t.Setenv(config.EnvGinMode, "debug")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvMaxCells, "100")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Size:      21,
		Algorithm: gridsearch.DFS,
		StepDelay: 0,
		HTTPAddr:  "127.0.0.1:9000",
		BaseURL:   "/grid",
		GinMode:   "debug",
		LogLevel:  logging.LevelDebug,
		MaxCells:  100,
	}, cfg)
}

func TestFromEnv_InvalidValuesReportedTogether(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSize, "zero")
	t.Setenv(config.EnvAlgorithm, "greedy")
	t.Setenv(config.EnvStepDelay, "-1s")
	t.Setenv(config.EnvMaxCells, "-4")
	t.Setenv(config.EnvGinMode, "loud")

	_, err := config.FromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidValue)
	for _, k := range []string{config.EnvSize, config.EnvAlgorithm, config.EnvStepDelay, config.EnvMaxCells, config.EnvGinMode} {
		assert.Contains(t, err.Error(), k)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDSEARCH_SIZE=31\nGRIDSEARCH_ALGORITHM=bfs\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvSize)
		_ = os.Unsetenv(config.EnvAlgorithm)
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.Size)
	assert.Equal(t, gridsearch.BFS, cfg.Algorithm)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
