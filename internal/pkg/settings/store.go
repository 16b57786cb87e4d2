// Package settings 进程级运行时配置存储。
//
// Store 由 main 构造后注入到 handler，不通过全局变量访问。
// 并发约定：所有实现都允许多个请求同时读写，同一个 key 的并发 Set 以最后一次写入为准；
// 这些配置仅用于运维调试，不参与业务正确性判断。
package settings

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyKey = errors.New("settings key must not be empty")

type Store interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any) error
	All(ctx context.Context) (map[string]any, error)
}

// Seed 写入默认配置，已存在的 key 不覆盖
func Seed(ctx context.Context, s Store, defaults map[string]any) error {
	for k, v := range defaults {
		_, ok, err := s.Get(ctx, k)
		if err != nil {
			return fmt.Errorf("seed settings %q: %w", k, err)
		}
		if ok {
			continue
		}
		if err = s.Set(ctx, k, v); err != nil {
			return fmt.Errorf("seed settings %q: %w", k, err)
		}
	}
	return nil
}
