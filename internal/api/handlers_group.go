package api

import "Marketplace/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	DashboardHandler *handler.DashboardHandler
	BookmarkHandler  *handler.BookmarkHandler
	InterestHandler  *handler.InterestHandler
	BlockHandler     *handler.BlockHandler
	ReportHandler    *handler.ReportHandler
}
