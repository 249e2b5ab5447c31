package model

import (
	"fmt"
	"time"
)

const (
	ReportTargetPost    = "post"
	ReportTargetUser    = "user"
	ReportTargetComment = "comment"
)

const (
	ReportStatusPending  = "Pending"
	ReportStatusResolved = "Resolved"
)

type Report struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ReporterID uint64    `gorm:"not null;index:idx_reporter_target" json:"reporterId"`
	TargetType string    `gorm:"type:varchar(20);not null;index:idx_reporter_target" json:"targetType"`
	TargetID   uint64    `gorm:"not null;index:idx_reporter_target" json:"targetId"`
	Reason     string    `gorm:"type:varchar(500);not null" json:"reason"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PendingKey *string   `gorm:"type:varchar(80);uniqueIndex:idx_pending_key" json:"-"` // 处理后置 NULL
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PendingReportKey 待处理举报的唯一键
func PendingReportKey(reporterID uint64, targetType string, targetID uint64) string {
	return fmt.Sprintf("%d:%s:%d", reporterID, targetType, targetID)
}

func (Report) TableName() string {
	return "reports"
}
