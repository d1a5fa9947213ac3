package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

func newMemoryManager(encrypt bool) *Manager {
	cfg := &config.Config{
		Cache: config.CacheConfig{
			TTL:     60,
			Encrypt: encrypt,
			Secret:  "test-secret",
		},
	}
	return &Manager{
		config:  cfg,
		log:     logger.NewNop(),
		backend: NewMemoryCache(),
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	value, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, c.Delete(ctx, "a"))
	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Clear(ctx))
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestManagerProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newMemoryManager(false)

	profile := models.NewTargetProfile("https://example.com")
	profile.TargetType = models.TargetWebApplication
	profile.Technologies = []models.TechnologyStack{models.TechWordPress}
	profile.AttackSurfaceScore = 8.5

	require.NoError(t, m.SetProfile(ctx, profile))

	got, err := m.GetProfile(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.Target, got.Target)
	assert.Equal(t, profile.TargetType, got.TargetType)
	assert.Equal(t, profile.Technologies, got.Technologies)
	assert.Equal(t, profile.AttackSurfaceScore, got.AttackSurfaceScore)
}

func TestManagerProfileMiss(t *testing.T) {
	m := newMemoryManager(false)

	_, err := m.GetProfile(context.Background(), "https://never-cached.example.com")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestManagerEncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newMemoryManager(true)

	profile := models.NewTargetProfile("https://example.com")
	profile.TargetType = models.TargetAPIEndpoint
	require.NoError(t, m.SetProfile(ctx, profile))

	// The stored bytes must not be the plain JSON encoding
	raw, err := m.backend.Get(ctx, profileKey("https://example.com"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "api_endpoint")

	got, err := m.GetProfile(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, models.TargetAPIEndpoint, got.TargetType)
}

func TestManagerDecryptFailsWithWrongSecret(t *testing.T) {
	ctx := context.Background()
	m := newMemoryManager(true)

	profile := models.NewTargetProfile("https://example.com")
	require.NoError(t, m.SetProfile(ctx, profile))

	m.config.Cache.Secret = "different-secret"
	_, err := m.GetProfile(ctx, "https://example.com")
	assert.Error(t, err)
}

func TestProfileKeyIsStableAndNamespaced(t *testing.T) {
	assert.Equal(t, profileKey("https://example.com"), profileKey("https://example.com"))
	assert.NotEqual(t, profileKey("a"), profileKey("b"))
	assert.Contains(t, profileKey("a"), "hexstrike:profile:")
}
