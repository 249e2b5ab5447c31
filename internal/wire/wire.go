package wire

import (
	"Marketplace/internal/api"
	"Marketplace/internal/api/config"
	"Marketplace/internal/api/handler"
	"Marketplace/internal/job"
	"Marketplace/internal/pkg/cron"
	"Marketplace/internal/pkg/kafka"
	"Marketplace/internal/pkg/metrics"
	"Marketplace/internal/pkg/redis"
	"Marketplace/internal/pkg/security"
	"Marketplace/internal/repository"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, rdb *redisv9.Client, registry *prometheus.Registry, cfg *config.Config) (*ApplicationContainer, error) {
	m := metrics.NewMetrics(registry)
	if sqlDB, err := db.DB(); err == nil {
		metrics.RegisterRuntime(registry, sqlDB)
	}

	producerRepo := repository.NewProducerRepo(db)
	postRepo := repository.NewPostRepository(db)
	bookingRepo := repository.NewBookingRepo(db)
	followRepo := repository.NewFollowRepo(db)
	ratingRepo := repository.NewRatingRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	userRepo := repository.NewUserRepo(db)
	bookmarkRepo := repository.NewBookmarkRepo(db)
	interestRepo := repository.NewInterestRepo(db)
	blockRepo := repository.NewBlockRepo(db)
	reportRepo := repository.NewReportRepo(db)

	dashboardService := service.NewDashboardService(
		producerRepo, postRepo, bookingRepo, followRepo, ratingRepo, commentRepo,
		redis.NewCache(rdb), m,
		service.DashboardOptions{
			CacheTTL:              cfg.Dashboard.CacheDuration(),
			ApprovedFollowersOnly: cfg.Dashboard.OverviewApprovedFollowersOnly,
		},
	)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, postRepo)
	interestService := service.NewInterestService(interestRepo, producerRepo)
	blockService := service.NewBlockService(blockRepo, userRepo)
	reportService := service.NewReportService(reportRepo, postRepo, userRepo, commentRepo)

	handlers := &api.HandlersGroup{
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		BookmarkHandler:  handler.NewBookmarkHandler(bookmarkService),
		InterestHandler:  handler.NewInterestHandler(interestService),
		BlockHandler:     handler.NewBlockHandler(blockService),
		ReportHandler:    handler.NewReportHandler(reportService),
	}

	router := api.SetupRouter(handlers, api.RouterDeps{
		Validator: security.NewTokenValidator(cfg.JWT.Secret),
		Redis:     rdb,
		Metrics:   m,
		Registry:  registry,
	})

	cronMgr := cron.NewCronManager(cfg.Dashboard.BenchmarkCron, job.NewBenchmarkJob(dashboardService, rdb))

	kafkaMgr, err := kafka.NewConsumerManager(cfg, kafka.NewDashboardHandler(dashboardService, producerRepo, postRepo))
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
