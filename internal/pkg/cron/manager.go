package cron

import (
	"Connectly/internal/api/config"
	"Connectly/internal/job"
	"context"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	cfg          config.CronConfig
	postStatsJob *job.PostStatsJob
}

func NewCronManager(cfg config.CronConfig, postStatsJob *job.PostStatsJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		cfg:          cfg,
		postStatsJob: postStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cfg.PostStats, s.postStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Manager) Stop(ctx context.Context) {
	log.Info("Cron engine stopping")
	select {
	case <-s.engine.Stop().Done():
	case <-ctx.Done():
		log.Warn("Cron jobs still running at shutdown")
	}
}
