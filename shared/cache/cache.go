package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"indivoyage/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

// ErrDisabled is returned by every operation when no Redis client is configured.
var ErrDisabled = errors.New("cache disabled")

type RedisCache interface {
	// Save stores value under key for ttl seconds. Strings are stored raw, anything else as JSON.
	Save(ctx context.Context, key string, value any, ttl int) (err error)
	// Get loads key into value. A miss wraps Nil.
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	// Increment bumps the counter at key and returns the new value. The window starts on the
	// first increment and the key expires window seconds later.
	Increment(ctx context.Context, key string, window int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

// NewRedisCache wraps client. A nil client yields a cache that always misses.
func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// begin opens a span for op and reports whether a client is available.
func (c *redisCache) begin(ctx context.Context, op, key string) (context.Context, otel.Scope, error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	if c.client == nil {
		return ctx, scope, ErrDisabled
	}

	return ctx, scope, nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any, ttl int) (err error) {
	ctx, scope, err := c.begin(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err != nil {
		return err
	}

	payload, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err = c.client.Set(ctx, key, payload, time.Duration(ttl)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope, err := c.begin(ctx, "Get", key)
	defer scope.End()
	defer func() {
		if !errors.Is(err, Nil) {
			scope.TraceIfError(err)
		}
	}()

	if err != nil {
		return err
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if err = decode(payload, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode cache value")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope, err := c.begin(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err != nil {
		return err
	}

	if err = c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Increment(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope, err := c.begin(ctx, "Increment", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err != nil {
		return 0, err
	}

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(window)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	return incr.Val(), nil
}

func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

func decode(payload []byte, value any) error {
	switch v := value.(type) {
	case *string:
		*v = string(payload)
	case *[]byte:
		*v = payload
	default:
		return json.Unmarshal(payload, value)
	}

	return nil
}
