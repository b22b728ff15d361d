package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	goredis "github.com/redis/go-redis/v9"
)

// Redis keeps every key as a plain Redis string.
type Redis struct {
	client *goredis.Client
}

// NewRedis connects to a redis:// URL and verifies the connection.
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	if redisURL == "" {
		return nil, errors.New("store: redis_url is required for the redis backend")
	}
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: invalid redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, backendErr("ping", opts.Addr, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, backendErr("get", key, err)
	}
	log.Debug("redis get", "key", key, "bytes", len(data))
	return data, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return backendErr("set", key, err)
	}
	log.Debug("redis set", "key", key, "bytes", len(value))
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return backendErr("del", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
