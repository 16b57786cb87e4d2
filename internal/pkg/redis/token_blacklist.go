package redis

import (
	"Connectly/internal/pkg/consts"
	"context"
	"time"
)

// TokenBlacklist 基于 Redis 的 Token 注销记录
type TokenBlacklist struct{}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

func (s *TokenBlacklist) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, ttl)
}

func (s *TokenBlacklist) IsRevoked(ctx context.Context, signature string) (bool, error) {
	value, err := GetValue(ctx, consts.TokenBlacklistKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}
