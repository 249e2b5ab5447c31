package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestContextHandler_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-1")
	l.InfoContext(ctx, "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "trace-1", lines[0]["trace_id"])
}

func TestContextHandler_AddsUserID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)}).With("module", "dashboard")

	ctx := context.WithValue(WithTraceID(context.Background(), "trace-u"), UserIDKey, uint64(7))
	l.InfoContext(ctx, "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "trace-u", lines[0]["trace_id"])
	assert.Equal(t, float64(7), lines[0]["user_id"])
	assert.Equal(t, "dashboard", lines[0]["module"])
}

func TestTeeHandler_RemoteOnlyReceivesTracedRecords(t *testing.T) {
	var local, remoteBuf bytes.Buffer
	tee := NewTeeHandler(
		log.NewJSONHandler(&local, nil),
		NewRemoteFilterHandler(log.NewJSONHandler(&remoteBuf, nil)),
	)
	l := log.New(&ContextHandler{tee})

	l.Info("startup")
	l.InfoContext(context.WithValue(context.Background(), TraceIDKey, "trace-2"), "request")

	assert.Len(t, decodeLines(t, &local), 2)

	remoteLines := decodeLines(t, &remoteBuf)
	require.Len(t, remoteLines, 1)
	assert.Equal(t, "request", remoteLines[0]["msg"])
}

func TestTeeHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	tee := NewTeeHandler(
		log.NewJSONHandler(&buf, &log.HandlerOptions{Level: log.LevelError}),
		log.NewJSONHandler(&buf, &log.HandlerOptions{Level: log.LevelInfo}),
	)
	assert.True(t, tee.Enabled(context.Background(), log.LevelInfo))
	assert.False(t, tee.Enabled(context.Background(), log.LevelDebug))
}

func TestAccessLogFormatter(t *testing.T) {
	remote.Token = "token"
	remote.Index = "logstash-marketplace"
	defer func() { remote.Token, remote.Index = "", "" }()

	req, err := http.NewRequestWithContext(context.WithValue(context.Background(), TraceIDKey, "trace-3"), http.MethodGet, "/api/dashboard/overview", nil)
	require.NoError(t, err)

	line := accessLogFormatter(gin.LogFormatterParams{
		Request:    req,
		TimeStamp:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		StatusCode: 200,
		Latency:    time.Millisecond,
		Method:     http.MethodGet,
		Path:       "/api/dashboard/overview",
	})

	m := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(line), &m))
	assert.Equal(t, "trace-3", m["trace_id"])
	assert.Equal(t, "logstash-marketplace", m["target_index"])
	assert.Equal(t, float64(200), m["status"])
}
