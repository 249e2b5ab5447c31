package handler

import (
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	blockSvc service.BlockService
}

func NewBlockHandler(blockSvc service.BlockService) *BlockHandler {
	return &BlockHandler{blockSvc: blockSvc}
}

func (s *BlockHandler) Block(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, ok := util.ParseUint64(c.Param("target_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.blockSvc.Block(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BlockHandler) Unblock(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, ok := util.ParseUint64(c.Param("target_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.blockSvc.Unblock(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BlockHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	res, err := s.blockSvc.ListBlocked(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
