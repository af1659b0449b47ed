package requests

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/atnchile/portal/pkg/cache"
	"github.com/atnchile/portal/pkg/redis"
)

// Guard remembers recent submissions so that a double click or a retried
// form does not reach the workflow twice.
type Guard interface {
	// Claim reports whether key was not seen within the guard's window.
	Claim(ctx context.Context, key string) (bool, error)
	// Release forgets key, allowing it to be submitted again.
	Release(ctx context.Context, key string) error
}

// Fingerprint identifies a submission by requester, type and content.
func Fingerprint(rut string, t Type, p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(rut))
	h.Write([]byte{0})
	h.Write([]byte(t))
	h.Write([]byte{0})
	h.Write(raw)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MemoryGuard keeps fingerprints in a process-local LRU. Use it when the
// portal runs as a single instance.
type MemoryGuard struct {
	seen *cache.LRU[string, struct{}]
}

// NewMemoryGuard remembers up to capacity fingerprints for window each.
func NewMemoryGuard(capacity int, window time.Duration, opts ...cache.Option) *MemoryGuard {
	opts = append([]cache.Option{cache.WithTTL(window)}, opts...)
	return &MemoryGuard{seen: cache.NewLRU[string, struct{}](capacity, opts...)}
}

func (g *MemoryGuard) Claim(_ context.Context, key string) (bool, error) {
	return g.seen.PutIfAbsent(key, struct{}{}), nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.seen.Remove(key)
	return nil
}

// RedisGuard shares fingerprints between portal instances.
type RedisGuard struct {
	claimer *redis.Claimer
	window  time.Duration
}

func NewRedisGuard(claimer *redis.Claimer, window time.Duration) *RedisGuard {
	return &RedisGuard{claimer: claimer, window: window}
}

func (g *RedisGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.claimer.Claim(ctx, "submission:"+key, g.window)
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.claimer.Release(ctx, "submission:"+key)
}
