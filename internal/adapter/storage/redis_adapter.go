package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/storefront/internal/port"
)

const (
	idempotencyKeyPrefix = "idempotency:sale:"
	pendingPrefix        = "pending:"
	donePrefix           = "done:"
)

// completeScript stores the response only while the caller still owns the
// pending reservation.
var completeScript = redis.NewScript(`
local key = KEYS[1]
local owner = ARGV[1]

if redis.call('GET', key) ~= owner then
	return 0
end

redis.call('SET', key, ARGV[2], 'PX', ARGV[3])
return 1
`)

var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisAdapter struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAdapter(client *redis.Client, ttl time.Duration) *RedisAdapter {
	return &RedisAdapter{client: client, ttl: ttl}
}

func (r *RedisAdapter) Reserve(ctx context.Context, key, owner string) (port.IdempotencyStatus, []byte, error) {
	redisKey := idempotencyKeyPrefix + key

	ok, err := r.client.SetNX(ctx, redisKey, pendingPrefix+owner, r.ttl).Result()
	if err != nil {
		return 0, nil, err
	}
	if ok {
		return port.IdempotencyReserved, nil, nil
	}

	value, err := r.client.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		// released between SETNX and GET, the client may retry
		return port.IdempotencyPending, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}

	if stored, found := strings.CutPrefix(value, donePrefix); found {
		return port.IdempotencyCompleted, []byte(stored), nil
	}
	return port.IdempotencyPending, nil, nil
}

func (r *RedisAdapter) Complete(ctx context.Context, key, owner string, response []byte) error {
	return completeScript.Run(ctx, r.client,
		[]string{idempotencyKeyPrefix + key},
		pendingPrefix+owner, donePrefix+string(response), r.ttl.Milliseconds(),
	).Err()
}

func (r *RedisAdapter) Release(ctx context.Context, key, owner string) error {
	return releaseScript.Run(ctx, r.client,
		[]string{idempotencyKeyPrefix + key},
		pendingPrefix+owner,
	).Err()
}

// NoopIdempotencyStore is used when Redis is not configured: every request
// is treated as new.
type NoopIdempotencyStore struct{}

func (NoopIdempotencyStore) Reserve(context.Context, string, string) (port.IdempotencyStatus, []byte, error) {
	return port.IdempotencyReserved, nil, nil
}

func (NoopIdempotencyStore) Complete(context.Context, string, string, []byte) error { return nil }

func (NoopIdempotencyStore) Release(context.Context, string, string) error { return nil }
