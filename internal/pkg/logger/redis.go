package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisSlowThreshold = 100 * time.Millisecond
	// 缓存值是整段 JSON，日志里只保留前缀
	redisArgMaxLen = 64
)

// RedisLoggerHook 只记录出错和慢命令，缓存未命中 (redis.Nil) 不算错误
type RedisLoggerHook struct {
	SlowThreshold time.Duration
}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{SlowThreshold: defaultRedisSlowThreshold}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if ignoreRedisErr(cmd.Name(), err) {
			return err
		}
		if err == nil && elapsed <= s.SlowThreshold {
			return nil
		}

		fields := []any{
			log.String("command", cmd.Name()),
			log.String("args", formatRedisArgs(cmd)),
			log.Duration("latency", elapsed),
		}
		if err != nil {
			log.ErrorContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		} else {
			log.WarnContext(ctx, "Redis Slow", fields...)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		fields := []any{
			log.Int("cmd_count", len(cmds)),
			log.Duration("latency", elapsed),
		}
		switch {
		case err != nil && !errors.Is(err, redis.Nil):
			log.ErrorContext(ctx, "Redis Pipeline Error", append(fields, log.Any("err", err))...)
		case elapsed > s.SlowThreshold:
			log.WarnContext(ctx, "Redis Pipeline Slow", fields...)
		}
		return err
	}
}

// ignoreRedisErr 未命中和旧版本 redis 不支持 CLIENT SETINFO 都不是故障
func ignoreRedisErr(name string, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, redis.Nil) {
		return true
	}
	return name == "client" && strings.Contains(err.Error(), "setinfo")
}

func formatRedisArgs(cmd redis.Cmder) string {
	switch cmd.Name() {
	case "auth", "hello":
		return "[PROTECTED]"
	}
	args := cmd.Args()
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		s := fmt.Sprint(arg)
		if len(s) > redisArgMaxLen {
			s = s[:redisArgMaxLen] + "..."
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
