package logger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

// SlogGormLogger 将 gorm 日志转到 slog，超过 SlowThreshold 的 SQL 记为 WARN
type SlogGormLogger struct {
	LogLevel      logger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger() *SlogGormLogger {
	return &SlogGormLogger{LogLevel: logger.Info, SlowThreshold: 200 * time.Millisecond}
}

func (l *SlogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		slog.InfoContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		slog.WarnContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		slog.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	operation, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	if operation == "" {
		operation = "Query"
	}
	msg := "MySQL " + strings.ToUpper(operation)

	fields := []any{
		slog.String("sql", sql),
		slog.Duration("latency", elapsed),
		slog.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, logger.ErrRecordNotFound):
		if l.LogLevel >= logger.Error {
			slog.ErrorContext(ctx, msg+" Error", append(fields, slog.Any("err", err))...)
		}
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		if l.LogLevel >= logger.Warn {
			slog.WarnContext(ctx, msg+" Slow", fields...)
		}
	case l.LogLevel >= logger.Info:
		slog.InfoContext(ctx, msg, fields...)
	}
}
