package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/sentinel"
)

// RedisAttempt reads a dataset snapshot that another process published under a
// single key. It only reads; nothing is ever written back.
type RedisAttempt struct {
	client redis.Cmdable
	key    string
}

func NewRedisAttempt(client redis.Cmdable, key string) *RedisAttempt {
	return &RedisAttempt{client: client, key: key}
}

func (a *RedisAttempt) Name() string {
	return "redis:" + a.key
}

func (a *RedisAttempt) Kind() Kind {
	return KindRedis
}

func (a *RedisAttempt) Acquire(ctx context.Context) (*dataset.Payload, error) {
	raw, err := a.client.Get(ctx, a.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("key %s: %w", a.key, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", a.key, sentinel.ErrUnavailable, err)
	}
	return dataset.Decode(raw)
}
