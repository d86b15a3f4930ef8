package redis

import (
	"context"
	"indivoyage/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects to the primary Redis. It returns nil when no host is configured or the
// server cannot be reached, in which case callers run without a cache.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	if primary.Host == "" {
		log.Info().Msg("No Redis host configured, running without cache")

		return nil
	}

	port := primary.Port
	if port == "" {
		port = "6379"
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis, running without cache")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", port).
		Msg("Connected to Redis")

	return client
}
