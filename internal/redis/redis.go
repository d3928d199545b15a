package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache stores synthesized speech clips so repeated announcements skip the
// TTS round trip. Keys expire; redis being down degrades to cache misses.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, username, password string, ttl time.Duration) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       0,
	})
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("redis get failed")
		}
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, audio []byte) {
	if err := c.rdb.Set(ctx, key, audio, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
