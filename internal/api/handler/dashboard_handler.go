package handler

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 商家看板，路由层已限定 producer 角色
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (s *DashboardHandler) GetOverview(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.dashboardSvc.GetOverview(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *DashboardHandler) GetUserInsights(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.dashboardSvc.GetUserInsights(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *DashboardHandler) GetTrends(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.TrendQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := s.dashboardSvc.GetTrends(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *DashboardHandler) GetRatings(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.dashboardSvc.GetRatings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *DashboardHandler) GetFeedback(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.dashboardSvc.GetFeedback(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *DashboardHandler) GetBenchmark(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.dashboardSvc.GetBenchmark(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
