package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"fms/cdu/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"CDU_LISTEN_ADDR", "CDU_CATALOG", "CDU_DB_PATH", "CDU_LOG_LEVEL", "CDU_LOG_DIR"} {
			t.Setenv(key, "")
		}
		cfg := config.Default()
		assert.Equal(t, ":5000", cfg.ListenAddr)
		assert.Equal(t, "airport_data.json", cfg.CatalogFile)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment then flags", func(t *testing.T) {
		t.Setenv("CDU_LISTEN_ADDR", ":6000")
		t.Setenv("CDU_LOG_LEVEL", "debug")

		cfg := config.Default()
		fs := flag.NewFlagSet("cdu", flag.ContinueOnError)
		cfg.RegisterFlags(fs)
		require.NoError(t, fs.Parse([]string{"-catalog", "waypoints.json"}))

		assert.Equal(t, ":6000", cfg.ListenAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "waypoints.json", cfg.CatalogFile)
	})

	t.Run("dotenv file", func(t *testing.T) {
		t.Setenv("CDU_DB_PATH", "")
		os.Unsetenv("CDU_DB_PATH")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CDU_DB_PATH=/var/lib/cdu\n"), 0o644))

		config.LoadEnv(path)
		t.Cleanup(func() { os.Unsetenv("CDU_DB_PATH") })
		assert.Equal(t, "/var/lib/cdu", config.Default().DBPath)
	})
}
