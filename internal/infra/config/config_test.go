package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, StorageCSV, cfg.Storage.Driver)
	require.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	require.Empty(t, cfg.LLM.APIKey)
	require.Empty(t, cfg.Weather.APIKey)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9090"
weather:
  cacheTtl: 1m
storage:
  driver: sqlite
  sqlitePath: outfits.db
`), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("WEATHER_CACHE_TTL", "30s")
	t.Setenv("WEATHER_API_KEY", "from-env")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 30*time.Second, cfg.Weather.CacheTTL)
	require.Equal(t, "from-env", cfg.Weather.APIKey)
	require.Equal(t, StorageSQLite, cfg.Storage.Driver)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")
	t.Cleanup(func() { _ = os.Unsetenv("LLM_MODEL") })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LLM_MODEL=gpt-test\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "gpt-test", cfg.LLM.Model)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty address":     func(c *Config) { c.HTTP.Address = "" },
		"unknown driver":    func(c *Config) { c.Storage.Driver = "mongo" },
		"postgres no dsn":   func(c *Config) { c.Storage.Driver = StoragePostgres },
		"redis no addr":     func(c *Config) { c.Weather.Redis.Enabled = true },
		"negative ttl":      func(c *Config) { c.Weather.CacheTTL = -time.Second },
		"empty prompt":      func(c *Config) { c.Advisor.Prompt = "" },
		"zero threshold":    func(c *Config) { c.Breaker.FailureThreshold = 0 },
		"hot temperature":   func(c *Config) { c.LLM.Temperature = 3 },
		"zero rate":         func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 },
		"zero retry budget": func(c *Config) { c.HTTP.Retry.MaxAttempts = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, defaultConfig().Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
