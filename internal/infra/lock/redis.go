package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL        = 5 * time.Second
	defaultRetryEvery = 25 * time.Millisecond
	keyPrefix         = "reservely:lock:"
)

// снимаем блокировку, только если она всё ещё принадлежит нам
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisClient подмножество клиента go-redis, нужное для блокировки
type RedisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Redis распределённая блокировка (SET NX PX + снятие по токену).
// TTL ограничивает время удержания, если процесс упал, не сняв блокировку.
type Redis struct {
	client     RedisClient
	ttl        time.Duration
	retryEvery time.Duration
	logger     Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// NewRedis создает распределённую блокировку
func NewRedis(client RedisClient, ttl time.Duration, logger Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{
		client:     client,
		ttl:        ttl,
		retryEvery: defaultRetryEvery,
		logger:     logger,
	}
}

// TTL время жизни ключа блокировки. Блокировка не продлевается,
// поэтому работа под ней должна укладываться в TTL.
func (r *Redis) TTL() time.Duration {
	return r.ttl
}

// Lock пытается занять ключ, повторяя попытки до отмены контекста
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryEvery)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
			}
			return nil, fmt.Errorf("%w: SETNX %s: %v", ErrLockUnavailable, redisKey, err)
		}
		if ok {
			return r.unlockFunc(redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) unlockFunc(redisKey, token string) func() {
	return func() {
		// контекст запроса мог быть уже отменён
		ctx, cancel := context.WithTimeout(context.Background(), r.ttl)
		defer cancel()

		if err := unlockScript.Run(ctx, r.client, []string{redisKey}, token).Err(); err != nil && r.logger != nil {
			r.logger.Warn("Lock: failed to release %s: %v", redisKey, err)
		}
	}
}
