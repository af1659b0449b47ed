package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Claimer takes short-lived exclusive claims on keys with SET NX, so that
// every portal instance agrees on who saw a key first.
type Claimer struct {
	db     redis.Cmdable
	prefix string
}

func NewClaimer(db redis.Cmdable, prefix string) *Claimer {
	return &Claimer{db: db, prefix: prefix}
}

// Claim reports whether key was free and is now held for ttl.
func (c *Claimer) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	ok, err := c.db.SetNX(ctx, c.prefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errors.Join(ErrClaimFailed, err)
	}
	return ok, nil
}

// Release drops a claim before its ttl runs out.
func (c *Claimer) Release(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := c.db.Del(ctx, c.prefix+key).Err(); err != nil {
		return errors.Join(ErrClaimFailed, err)
	}
	return nil
}
