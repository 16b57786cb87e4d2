package redis

import (
	"Connectly/internal/pkg/consts"
	"context"
	"strconv"
)

// PostTypeStats 按帖子类型的计数，存放在一个 hash 中
type PostTypeStats struct{}

func NewPostTypeStats() *PostTypeStats {
	return &PostTypeStats{}
}

func (s *PostTypeStats) Incr(ctx context.Context, postType string, delta int64) error {
	return HIncrBy(ctx, consts.PostTypeCountKey, postType, delta)
}

func (s *PostTypeStats) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := HGetAll(ctx, consts.PostTypeCountKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[k] = n
	}
	return out, nil
}

func (s *PostTypeStats) Replace(ctx context.Context, counts map[string]int64) error {
	values := make(map[string]interface{}, len(counts))
	for k, v := range counts {
		values[k] = v
	}
	return ReplaceHash(ctx, consts.PostTypeCountKey, values)
}
