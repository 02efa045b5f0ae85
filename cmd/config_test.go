package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/opsheet"
	"github.com/etnz/opsheet/tinkoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, tinkoff.DefaultBaseURL, cfg.Broker.BaseURL)
	assert.Equal(t, tinkoff.DefaultTimeout, cfg.Broker.GetTimeout())
	assert.Equal(t, "md", cfg.Report.Format)

	start, err := cfg.Report.GetTradingStart()
	require.NoError(t, err)
	assert.True(t, start.Equal(opsheet.DefaultTradingStart), "trading start = %v", start)
}

func TestConfig_LoadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{EnvToken, EnvBaseURL, EnvLogLevel, EnvTradingStart, EnvFormat} {
		unsetenv(t, k)
	}
	err := os.WriteFile("opsheet.toml", []byte(`
[broker]
token = "file-token"
timeout = "5s"
cache_dir = ".cache"

[report]
trading_start = "2020-06-01T00:00:00Z"
format = "json"
`), 0o644)
	require.NoError(t, err)

	cfg, err := LoadConfig("missing.toml", "opsheet.toml")
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Broker.Token)
	assert.Equal(t, 5*time.Second, cfg.Broker.GetTimeout())
	assert.Equal(t, ".cache", cfg.Broker.CacheDir)
	assert.Equal(t, "json", cfg.Report.Format)
	// untouched keys keep their defaults
	assert.Equal(t, tinkoff.DefaultRateLimit, cfg.Broker.RateLimit)
	assert.Equal(t, string(opsheet.DefaultReferenceInstrument), cfg.Report.ReferenceFigi)

	start, err := cfg.Report.GetTradingStart()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "opsheet.toml")
	require.NoError(t, os.WriteFile(path, []byte("[broker]\ntoken = \"file-token\"\n"), 0o644))
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvLogLevel, "debug")
	unsetenv(t, EnvFormat)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Broker.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetenv(t, EnvToken)
	require.NoError(t, os.WriteFile(".env", []byte("OPSHEET_TOKEN=dotenv-token\n"), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", cfg.Broker.Token)
}

func TestConfig_InvalidFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("bad.toml", []byte("[broker\n"), 0o644))
	_, err := LoadConfig("bad.toml")
	assert.Error(t, err)
}

func TestConfig_RateLimit(t *testing.T) {
	tests := []struct {
		configured int
		want       int
	}{
		{configured: 10, want: 10},
		{configured: 0, want: tinkoff.DefaultRateLimit},
		{configured: -1, want: tinkoff.DefaultRateLimit},
	}
	for _, test := range tests {
		c := BrokerConfig{RateLimit: test.configured}
		assert.Equal(t, test.want, c.GetRateLimit(), "rate_limit = %d", test.configured)
	}
}

func TestConfig_ZeroRateLimitFromFile(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetenv(t, "OPSHEET_RATE_LIMIT")
	require.NoError(t, os.WriteFile("opsheet.toml", []byte("[broker]\nrate_limit = 0\n"), 0o644))

	cfg, err := LoadConfig("opsheet.toml")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Broker.RateLimit)
	assert.Equal(t, tinkoff.DefaultRateLimit, cfg.Broker.GetRateLimit())
}

func TestConfig_InvalidTradingStart(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Report.TradingStart = "2019-01-01"
	_, err := cfg.Report.GetTradingStart()
	assert.Error(t, err)
}
