package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Redis struct {
	db *redis.Client
}

func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	const op = "cache.NewRedis"

	db := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Redis{db: db}, nil
}

func (c *Redis) Get(key string, result any) (bool, error) {
	const op = "cache.Get"

	val, err := c.db.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (c *Redis) Set(key string, value any, expiration time.Duration) error {
	const op = "cache.Set"

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.db.Set(context.Background(), key, data, expiration).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Redis) Invalidate(key string) error {
	const op = "cache.Invalidate"

	if err := c.db.Del(context.Background(), key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

var _ Cache = (*Redis)(nil)
