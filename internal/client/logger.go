package client

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
}

// LogFileName 玩家日志文件名
func LogFileName(player string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, player)
	return fmt.Sprintf("AI-%s.log", safe)
}

// NewPlayerLogger 打开 dir/AI-<player>.log 并返回 logfmt 日志器。
// 调用方负责关闭返回的 io.Closer。
func NewPlayerLogger(dir, player, lvl string) (log.Logger, io.Closer, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, nil, err
	}
	if dir == "" {
		dir = DefaultLogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName(player)), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(f))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller, "player", player)
	logger = level.NewFilter(logger, opt)
	return logger, f, nil
}
