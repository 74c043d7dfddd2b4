// ABOUTME: Redis-backed KV medium for users keeping state in a local redis.
// ABOUTME: Keys are namespaced with a prefix so several profiles can share a server.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces healthflow keys inside redis.
const DefaultRedisPrefix = "healthflow:"

// RedisKV stores keys in redis with no expiry.
type RedisKV struct {
	client *redis.Client
	prefix string
}

var _ KV = (*RedisKV)(nil)

// OpenRedis connects to the redis server at redisURL and verifies it with PING.
func OpenRedis(redisURL, prefix string) (*RedisKV, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opt.MaxRetries = 3
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisKV(client, prefix), nil
}

// NewRedisKV wraps an existing client. An empty prefix uses DefaultRedisPrefix.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) Get(key string) ([]byte, error) {
	val, err := r.client.Get(context.Background(), r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisKV) Set(key string, value []byte) error {
	if err := r.client.Set(context.Background(), r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Delete(key string) error {
	if err := r.client.Del(context.Background(), r.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
