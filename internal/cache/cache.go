package cache

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = fmt.Errorf("cache miss")

// Cache interface defines caching operations
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Manager caches analyzed target profiles, Redis-first with an in-memory
// fallback, optionally sealing entries with authenticated encryption.
type Manager struct {
	config  *config.Config
	log     logger.Logger
	backend Cache
}

// NewManager creates a cache manager, preferring Redis when reachable
func NewManager(cfg *config.Config, log logger.Logger) (*Manager, error) {
	m := &Manager{
		config: cfg,
		log:    log,
	}

	if client := initRedis(cfg); client != nil {
		m.backend = NewRedisCache(client)
		log.Info("Using Redis cache backend", "addr", cfg.Cache.RedisAddr)
	} else {
		m.backend = NewMemoryCache()
		log.Info("Using in-memory cache backend")
	}

	return m, nil
}

// GetProfile retrieves a cached target profile
func (m *Manager) GetProfile(ctx context.Context, target string) (*models.TargetProfile, error) {
	data, err := m.backend.Get(ctx, profileKey(target))
	if err != nil {
		return nil, err
	}

	if m.config.Cache.Encrypt {
		data, err = m.open(data)
		if err != nil {
			m.log.Error("Failed to decrypt cached profile", "target", target, "error", err)
			return nil, err
		}
	}

	var profile models.TargetProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile: %w", err)
	}

	return &profile, nil
}

// SetProfile stores an analyzed profile with the configured TTL
func (m *Manager) SetProfile(ctx context.Context, profile *models.TargetProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	if m.config.Cache.Encrypt {
		data, err = m.seal(data)
		if err != nil {
			m.log.Error("Failed to encrypt profile", "target", profile.Target, "error", err)
			return err
		}
	}

	ttl := time.Duration(m.config.Cache.TTL) * time.Second
	return m.backend.Set(ctx, profileKey(profile.Target), data, ttl)
}

// Delete removes a cached profile
func (m *Manager) Delete(ctx context.Context, target string) error {
	return m.backend.Delete(ctx, profileKey(target))
}

// Clear removes all cached data
func (m *Manager) Clear(ctx context.Context) error {
	return m.backend.Clear(ctx)
}

func profileKey(target string) string {
	sum := sha256.Sum256([]byte(target))
	return fmt.Sprintf("hexstrike:profile:%x", sum[:12])
}

// seal encrypts data with chacha20poly1305, nonce prepended
func (m *Manager) seal(data []byte) ([]byte, error) {
	aead, err := m.newAEAD()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, data, nil), nil
}

// open decrypts data produced by seal
func (m *Manager) open(data []byte) ([]byte, error) {
	aead, err := m.newAEAD()
	if err != nil {
		return nil, err
	}

	if len(data) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}

func (m *Manager) newAEAD() (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(m.config.Cache.Secret))
	return chacha20poly1305.New(key[:])
}

func initRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}

// RedisCache implements Cache over Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	return result, err
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCache) Clear(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

// MemoryCache implements Cache in process memory
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

type cacheItem struct {
	value      []byte
	expiration time.Time
}

// NewMemoryCache creates an in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]cacheItem),
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mutex.RLock()
	item, exists := m.data[key]
	m.mutex.RUnlock()

	if !exists {
		return nil, ErrCacheMiss
	}

	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		m.mutex.Lock()
		delete(m.data, key)
		m.mutex.Unlock()
		return nil, ErrCacheMiss
	}

	return item.value, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	item := cacheItem{value: value}
	if expiration > 0 {
		item.expiration = time.Now().Add(expiration)
	}

	m.data[key] = item
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryCache) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data = make(map[string]cacheItem)
	return nil
}
