package utils

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker is the revocation store consulted on every authenticated
// request. Revoked entries expire together with the token they block, so
// the store never grows past the set of live tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const blacklistKeyPrefix = "auth:blacklist:"

// RedisTokenRevoker persists revocations in Redis so they survive restarts
// and are shared across instances.
type RedisTokenRevoker struct {
	client *redis.Client
}

func NewRedisTokenRevoker(client *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// token already expired, nothing to block
		return nil
	}
	return r.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err()
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenRevoker is the single-process fallback used in local dev and
// tests when Redis is not configured.
type MemoryTokenRevoker struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewMemoryTokenRevoker() *MemoryTokenRevoker {
	return &MemoryTokenRevoker{revoked: make(map[string]time.Time)}
}

func (m *MemoryTokenRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryTokenRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.RLock()
	expiry, exists := m.revoked[jti]
	m.mu.RUnlock()
	if !exists {
		return false, nil
	}
	if time.Now().After(expiry) {
		m.mu.Lock()
		delete(m.revoked, jti)
		m.mu.Unlock()
		return false, nil
	}
	return true, nil
}

var (
	revoker   TokenRevoker = NewMemoryTokenRevoker()
	revokerMu sync.RWMutex
)

// SetTokenRevoker swaps the process-wide revocation store. Called once at
// startup after the Redis client is established.
func SetTokenRevoker(r TokenRevoker) {
	revokerMu.Lock()
	defer revokerMu.Unlock()
	revoker = r
}

func GetTokenRevoker() TokenRevoker {
	revokerMu.RLock()
	defer revokerMu.RUnlock()
	return revoker
}
