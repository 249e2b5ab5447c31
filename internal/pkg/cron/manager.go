package cron

import (
	"Marketplace/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const defaultBenchmarkSpec = "0 0 0 * * *"

type Manager struct {
	engine        *cron.Cron
	benchmarkSpec string
	benchmarkJob  *job.BenchmarkJob
}

func NewCronManager(benchmarkSpec string, benchmarkJob *job.BenchmarkJob) *Manager {
	if benchmarkSpec == "" {
		benchmarkSpec = defaultBenchmarkSpec
	}
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		benchmarkSpec: benchmarkSpec,
		benchmarkJob:  benchmarkJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.benchmarkSpec, s.benchmarkJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
