package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisKV es el análogo directo de localStorage: GET/SET de la colección
// entera bajo su clave fija, sin expiración.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

var _ KV = (*RedisKV)(nil)
