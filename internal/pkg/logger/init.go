package logger

import (
	"Marketplace/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

var (
	LogWriter io.Writer = os.Stdout
	remote    config.LogstashConfig
)

// InitLogger 日志输出到 stdout，配置了 Logstash 时带 trace_id 的记录同时上报
func InitLogger(cfg config.LogstashConfig) {
	remote = cfg

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).
				WithAttrs([]log.Attr{
					log.String("target_index", cfg.Index),
					log.String("log_token", cfg.Token),
				})

			finalHandler = NewTeeHandler(hStdout, NewRemoteFilterHandler(hRemote))
			LogWriter = conn
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
