package service

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/model"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/repository"
	"context"
)

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, userID, postID uint64) (*dto.BookmarkToggleDTO, error)
	ListBookmarks(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.BookmarkDTO, error)
}

type bookmarkServiceImpl struct {
	bookmarkRepo repository.BookmarkRepo
	postRepo     repository.PostRepo
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepo, postRepo repository.PostRepo) BookmarkService {
	return &bookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
		postRepo:     postRepo,
	}
}

// ToggleBookmark 已收藏则取消，未收藏则收藏
func (s *bookmarkServiceImpl) ToggleBookmark(ctx context.Context, userID, postID uint64) (*dto.BookmarkToggleDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	bookmark, err := s.bookmarkRepo.GetBookmark(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if bookmark != nil {
		if err = s.bookmarkRepo.DeleteBookmark(ctx, userID, postID); err != nil {
			return nil, err
		}
		return &dto.BookmarkToggleDTO{Bookmarked: false}, nil
	}

	err = s.bookmarkRepo.CreateBookmark(ctx, &model.Bookmark{UserID: userID, PostID: postID})
	// 并发重复收藏视为已收藏
	if err != nil && !isDuplicateError(err) {
		return nil, err
	}
	return &dto.BookmarkToggleDTO{Bookmarked: true}, nil
}

func (s *bookmarkServiceImpl) ListBookmarks(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.BookmarkDTO, error) {
	limit, offset := util.PageToLimitOffset(page, pageSize)
	bookmarks, err := s.bookmarkRepo.GetBookmarks(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BookmarkDTO, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		res = append(res, &dto.BookmarkDTO{
			ID:        bookmark.ID,
			PostID:    bookmark.PostID,
			Title:     bookmark.Post.Title,
			CreatedAt: bookmark.CreatedAt,
		})
	}
	return res, nil
}
