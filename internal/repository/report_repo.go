package repository

import (
	"Marketplace/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReportRepo interface {
	CreateReport(ctx context.Context, report *model.Report) error
	CheckPendingReportExists(ctx context.Context, reporterID uint64, targetType string, targetID uint64) (bool, error)
}

type ReportRepoImpl struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &ReportRepoImpl{db: db}
}

func (s *ReportRepoImpl) CreateReport(ctx context.Context, report *model.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

// CheckPendingReportExists 同一举报人对同一目标仅允许一条待处理举报
func (s *ReportRepoImpl) CheckPendingReportExists(ctx context.Context, reporterID uint64, targetType string, targetID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Report{}).
		Where("reporter_id = ? AND target_type = ? AND target_id = ?", reporterID, targetType, targetID).
		Where("status = ?", model.ReportStatusPending).
		Count(&count).Error
	return count > 0, err
}
