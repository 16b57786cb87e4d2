package settings

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore 多实例共享的配置存储，所有 key 存在同一个 hash 中
type RedisStore struct {
	rdb  *redis.Client
	hash string
}

func NewRedisStore(rdb *redis.Client, hash string) *RedisStore {
	return &RedisStore{rdb: rdb, hash: hash}
}

func (s *RedisStore) Get(ctx context.Context, key string) (any, bool, error) {
	raw, err := s.rdb.HGet(ctx, s.hash, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var v any
	if err = json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, s.hash, key, string(raw)).Err()
}

func (s *RedisStore) All(ctx context.Context) (map[string]any, error) {
	raws, err := s.rdb.HGetAll(ctx, s.hash).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(raws))
	for k, raw := range raws {
		var v any
		if err = json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
