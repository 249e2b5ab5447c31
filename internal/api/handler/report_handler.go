package handler

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (s *ReportHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateReportDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.reportSvc.CreateReport(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
