package handler

import (
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkSvc service.BookmarkService
}

func NewBookmarkHandler(bookmarkSvc service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkSvc: bookmarkSvc}
}

func (s *BookmarkHandler) Toggle(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := util.ParseUint64(c.Param("post_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	res, err := s.bookmarkSvc.ToggleBookmark(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

func (s *BookmarkHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, pageSize := getPagination(c)

	res, err := s.bookmarkSvc.ListBookmarks(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
