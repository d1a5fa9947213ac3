package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultsWithTempDirs(t *testing.T) *Config {
	t.Helper()
	config := &Config{}
	setDefaults(config)
	config.DataDir = t.TempDir()
	config.OutputDir = t.TempDir()
	return config
}

func TestDefaults(t *testing.T) {
	config := &Config{}
	setDefaults(config)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, 3, config.Engine.DNSTimeout)
	assert.Equal(t, "comprehensive", config.Engine.DefaultObjective)
	assert.False(t, config.Recon.Enabled)
	assert.Equal(t, "HexStrike/1.0", config.Recon.UserAgent)
	assert.Equal(t, "localhost:6379", config.Cache.RedisAddr)
	assert.Equal(t, 3600, config.Cache.TTL)
	assert.Equal(t, "table", config.Reporting.DefaultFormat)
	assert.Equal(t, []string{"table", "json", "yaml"}, config.Reporting.SupportedFormats)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	config := defaultsWithTempDirs(t)

	require.NoError(t, validate(config))
}

func TestValidateRejectsBadDNSTimeout(t *testing.T) {
	config := defaultsWithTempDirs(t)
	config.Engine.DNSTimeout = 0

	assert.Error(t, validate(config))

	config.Engine.DNSTimeout = 120
	assert.Error(t, validate(config))
}

func TestValidateRejectsBadCrawlDepth(t *testing.T) {
	config := defaultsWithTempDirs(t)
	config.Recon.CrawlDepth = 0

	assert.Error(t, validate(config))
}

func TestValidateRejectsEncryptionWithoutSecret(t *testing.T) {
	config := defaultsWithTempDirs(t)
	config.Cache.Encrypt = true
	config.Cache.Secret = ""

	err := validate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestValidateRejectsUnsupportedFormat(t *testing.T) {
	config := defaultsWithTempDirs(t)
	config.Reporting.DefaultFormat = "xml"

	err := validate(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HEXSTRIKE_LOG_LEVEL", "debug")
	t.Setenv("HEXSTRIKE_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("HEXSTRIKE_CACHE_SECRET", "s3cret")

	config := &Config{}
	setDefaults(config)
	loadFromEnv(config)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "redis.internal:6380", config.Cache.RedisAddr)
	assert.Equal(t, "s3cret", config.Cache.Secret)
	assert.True(t, config.Cache.Encrypt)
}

func TestExpandPath(t *testing.T) {
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))
	assert.NotContains(t, expandPath("~/x"), "~")
}
