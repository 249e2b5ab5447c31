package dto

// CreateReportDTO 举报
type CreateReportDTO struct {
	TargetType string `json:"targetType" binding:"required" validate:"required,oneof=post user comment"`
	TargetID   uint64 `json:"targetId" binding:"required" validate:"required,gt=0"`
	Reason     string `json:"reason" binding:"required" validate:"required,min=1,max=500"`
}
