package logger

import (
	"context"
	log "log/slog"
)

// Context 中的 Key，gin.Context 与 request context 共用
const (
	TraceIDKey = "trace_id"
	UserIDKey  = "user_id"
)

// WithTraceID 在 ctx 上挂载 trace id
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// ContextHandler 从 ctx 中提取 trace_id 与 user_id 附加到每条日志
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID := TraceID(ctx); traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	if ctx != nil {
		if uid, ok := ctx.Value(UserIDKey).(uint64); ok && uid != 0 {
			r.AddAttrs(log.Uint64(UserIDKey, uid))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
