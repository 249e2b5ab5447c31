package service

import (
	"Marketplace/internal/api/dto"
	"Marketplace/internal/model"
	"Marketplace/internal/pkg/util"
	"Marketplace/internal/repository"
	"context"
)

type ReportService interface {
	CreateReport(ctx context.Context, userID uint64, req *dto.CreateReportDTO) error
}

type reportServiceImpl struct {
	reportRepo  repository.ReportRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
	commentRepo repository.CommentRepo
}

func NewReportService(
	reportRepo repository.ReportRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
) ReportService {
	return &reportServiceImpl{
		reportRepo:  reportRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

func (s *reportServiceImpl) CreateReport(ctx context.Context, userID uint64, req *dto.CreateReportDTO) error {
	if err := util.ValidateDTO(req); err != nil {
		return ErrParamInvalid
	}

	if err := s.checkTarget(ctx, req.TargetType, req.TargetID); err != nil {
		return err
	}

	exists, err := s.reportRepo.CheckPendingReportExists(ctx, userID, req.TargetType, req.TargetID)
	if err != nil {
		return err
	}
	if exists {
		return ErrReportExist
	}

	pendingKey := model.PendingReportKey(userID, req.TargetType, req.TargetID)
	err = s.reportRepo.CreateReport(ctx, &model.Report{
		ReporterID: userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		Status:     model.ReportStatusPending,
		PendingKey: &pendingKey,
	})
	// 并发请求都通过了存在性检查，由唯一索引兜底
	if isDuplicateError(err) {
		return ErrReportExist
	}
	return err
}

// checkTarget 被举报对象必须存在
func (s *reportServiceImpl) checkTarget(ctx context.Context, targetType string, targetID uint64) error {
	switch targetType {
	case model.ReportTargetPost:
		post, err := s.postRepo.GetPost(ctx, targetID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
	case model.ReportTargetUser:
		user, err := s.userRepo.GetUserById(ctx, targetID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
	case model.ReportTargetComment:
		comment, err := s.commentRepo.GetComment(ctx, targetID)
		if err != nil {
			return err
		}
		if comment == nil {
			return ErrCommentNotFound
		}
	default:
		return ErrReportTarget
	}
	return nil
}
