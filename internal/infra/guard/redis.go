package guard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:session:"

var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisGuard shares session locks between instances with SET NX PX.
type RedisGuard struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisGuard(rdb redis.UniversalClient, ttl time.Duration) *RedisGuard {
	return &RedisGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	redisKey := keyPrefix + key
	token := newToken()

	ok, err := g.rdb.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, errs.Wrap(err, "acquire checkout session lock")
	}
	if !ok {
		return nil, ErrCheckoutInFlight
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The request context may already be done when the checkout ends.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, g.rdb, []string{redisKey}, token).Err(); err != nil {
				slog.Warn("failed to release checkout session lock", "key", key, "error", err.Error())
			}
		})
	}, nil
}
