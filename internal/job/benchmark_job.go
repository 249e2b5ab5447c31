package job

import (
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/logger"
	"Marketplace/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

const benchmarkLockTTL = 5 * time.Minute

type BenchmarkRefresher interface {
	RefreshBenchmark(ctx context.Context) error
}

// BenchmarkJob 每日重新计算各商家类型的平均评分
type BenchmarkJob struct {
	refresher BenchmarkRefresher
	rdb       *redisv9.Client
}

func NewBenchmarkJob(refresher BenchmarkRefresher, rdb *redisv9.Client) *BenchmarkJob {
	return &BenchmarkJob{
		refresher: refresher,
		rdb:       rdb,
	}
}

func (s *BenchmarkJob) Run() {
	traceID := "job-benchmark-" + uuid.NewString()
	ctx := logger.WithTraceID(context.Background(), traceID)
	_ = s.RunOnce(ctx)
}

// RunOnce 多实例部署时只有拿到锁的实例执行
func (s *BenchmarkJob) RunOnce(ctx context.Context) error {
	token := uuid.NewString()
	ok, err := redis.TryLock(ctx, s.rdb, consts.DashboardBenchmarkLock, token, benchmarkLockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire benchmark lock error", "err", err)
		return err
	}
	if !ok {
		log.InfoContext(ctx, "benchmark refresh is running elsewhere, skip")
		return nil
	}
	defer redis.UnLock(ctx, s.rdb, consts.DashboardBenchmarkLock, token)

	start := time.Now()
	if err = s.refresher.RefreshBenchmark(ctx); err != nil {
		log.ErrorContext(ctx, "refresh benchmark error", "err", err)
		return err
	}
	log.InfoContext(ctx, "benchmark refreshed", "cost", time.Since(start).String())
	return nil
}
