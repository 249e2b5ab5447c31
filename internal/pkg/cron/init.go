package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册全部任务后启动调度器，任一任务表达式非法则不启动
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	log.Info("Cron Jobs starting...", "jobs", mgr.Entries(), "benchmark_spec", mgr.benchmarkSpec)
	mgr.Start()
	return nil
}
