package job

import (
	"Connectly/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PostCounter 数据库中按类型统计帖子数量
type PostCounter interface {
	CountByType(ctx context.Context) (map[string]int64, error)
}

// StatsReplacer 整体覆盖类型计数
type StatsReplacer interface {
	Replace(ctx context.Context, counts map[string]int64) error
}

// PostStatsJob 以数据库为准重建帖子类型计数，修正事件丢失造成的偏差
type PostStatsJob struct {
	posts   PostCounter
	stats   StatsReplacer
	timeout time.Duration
}

func NewPostStatsJob(posts PostCounter, stats StatsReplacer) *PostStatsJob {
	return &PostStatsJob{
		posts:   posts,
		stats:   stats,
		timeout: time.Minute,
	}
}

func (s *PostStatsJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-post-stats-"+uuid.NewString())
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.Reconcile(ctx); err != nil {
		log.ErrorContext(ctx, "reconcile post stats error", "err", err)
	}
}

func (s *PostStatsJob) Reconcile(ctx context.Context) error {
	counts, err := s.posts.CountByType(ctx)
	if err != nil {
		return err
	}
	if err = s.stats.Replace(ctx, counts); err != nil {
		return err
	}
	log.InfoContext(ctx, "post stats reconciled", "types", len(counts))
	return nil
}
