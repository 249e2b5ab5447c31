package util

import (
	"fmt"
	"strconv"
)

// FormatAverage 均值统一保留两位小数
func FormatAverage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// ParseUint64 解析路径参数中的 ID，0 视为非法
func ParseUint64(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// PageToLimitOffset 页码转换为 limit/offset，非法值回退到默认
func PageToLimitOffset(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
