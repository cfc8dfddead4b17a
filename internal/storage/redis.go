package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis backs the substrate with plain GET/SET against a redis instance,
// which matches the substrate contract exactly.
type Redis struct {
	client *redis.Client
}

func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: rdb}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *Redis) Set(key, value string) error {
	return r.client.Set(context.Background(), key, value, 0).Err()
}
