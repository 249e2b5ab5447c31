package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// 超出部分不写入审计日志
const auditBodyLimit = 16384

var auditSkipPaths = map[string]struct{}{
	"/metrics":  {},
	"/api/ping": {},
}

// bodyRecorder 在写回客户端的同时保留响应体前 auditBodyLimit 字节
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if remain := auditBodyLimit - w.buf.Len(); remain > 0 {
		w.buf.Write(b[:min(len(b), remain)])
	}
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求参数与响应体
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := auditSkipPaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		reqBody := readRequestBody(c.Request)
		query, err := url.QueryUnescape(c.Request.URL.RawQuery)
		if err != nil {
			query = c.Request.URL.RawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", query),
			log.String("req_body", truncate(reqBody)),
		)

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		start := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.String("path", c.Request.URL.Path),
			log.Int("status", recorder.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("res_body", recorder.buf.String()),
		)
	}
}

// readRequestBody 读出请求体后放回，保证后续 handler 仍能绑定
func readRequestBody(req *http.Request) string {
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return string(body)
}

func truncate(s string) string {
	if len(s) <= auditBodyLimit {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:auditBodyLimit])
	b.WriteString("...")
	return b.String()
}
