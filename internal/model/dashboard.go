package model

import "time"

// TimeRange 闭区间 [From, To]
type TimeRange struct {
	From time.Time
	To   time.Time
}

// DailyCount 按天分桶的计数
type DailyCount struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// CriteriaAverage 按评分维度聚合的平均分
type CriteriaAverage struct {
	Criteria string  `json:"criteria"`
	Average  float64 `json:"average"`
}

// TypeAverage 按商家类型聚合的综合评分
type TypeAverage struct {
	Type string  `json:"type"`
	Avg  float64 `json:"avg"`
}
