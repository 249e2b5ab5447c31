package api

import (
	"Marketplace/internal/api/middleware"
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/logger"
	"Marketplace/internal/pkg/metrics"
	"Marketplace/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// RouterDeps 路由层依赖
type RouterDeps struct {
	Validator *security.TokenValidator
	Redis     *redis.Client
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
}

func SetupRouter(group *HandlersGroup, deps RouterDeps) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS & Metrics
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	logger.SetupGin(r)

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	auth := middleware.AuthMiddleware(deps.Validator, deps.Redis)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		// 需要登录 & 拥有 producer 角色
		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(auth, middleware.CheckRoles(consts.RoleProducer))
		{
			dashboardGroup.GET("/overview", group.DashboardHandler.GetOverview)
			dashboardGroup.GET("/insights", group.DashboardHandler.GetUserInsights)
			dashboardGroup.GET("/trends", group.DashboardHandler.GetTrends)
			dashboardGroup.GET("/ratings", group.DashboardHandler.GetRatings)
			dashboardGroup.GET("/feedback", group.DashboardHandler.GetFeedback)
			dashboardGroup.GET("/benchmark", group.DashboardHandler.GetBenchmark)
		}

		bookmarkGroup := apiGroup.Group("/bookmarks")
		bookmarkGroup.Use(auth)
		{
			bookmarkGroup.GET("", group.BookmarkHandler.List)
			bookmarkGroup.POST("/:post_id/toggle", group.BookmarkHandler.Toggle)
		}

		interestGroup := apiGroup.Group("/interests")
		interestGroup.Use(auth)
		{
			interestGroup.POST("", group.InterestHandler.Create)
			interestGroup.GET("/received", middleware.CheckRoles(consts.RoleProducer), group.InterestHandler.ListReceived)
		}

		blockGroup := apiGroup.Group("/blocks")
		blockGroup.Use(auth)
		{
			blockGroup.GET("", group.BlockHandler.List)
			blockGroup.POST("/:target_id", group.BlockHandler.Block)
			blockGroup.DELETE("/:target_id", group.BlockHandler.Unblock)
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(auth)
		{
			reportGroup.POST("", group.ReportHandler.Create)
		}
	}

	return r
}
