package handler

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	interestSvc service.InterestService
}

func NewInterestHandler(interestSvc service.InterestService) *InterestHandler {
	return &InterestHandler{interestSvc: interestSvc}
}

func (s *InterestHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateInterestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.interestSvc.CreateInterest(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListReceived 当前商家收到的意向
func (s *InterestHandler) ListReceived(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, pageSize := getPagination(c)

	res, err := s.interestSvc.ListReceivedInterests(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
