package cron

import (
	log "log/slog"

	pkgerrors "github.com/pkg/errors"
)

// InitCron 注册统计对账任务并启动调度，未配置调度表达式时不启动
func InitCron(mgr *Manager) error {
	if mgr.cfg.PostStats == "" {
		log.Info("Post stats reconciliation disabled")
		return nil
	}
	if err := mgr.RegisterJobs(); err != nil {
		return pkgerrors.Wrapf(err, "register post stats job %q", mgr.cfg.PostStats)
	}
	mgr.Start()
	log.Info("Post stats reconciliation scheduled", "schedule", mgr.cfg.PostStats)
	return nil
}
