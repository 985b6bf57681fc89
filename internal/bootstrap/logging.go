package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/derhamderham/diligence/config"
)

// InitLogging installs a text handler on stderr at the configured level and
// returns that level.
func InitLogging(cfg *config.Config) slog.Level {
	level := parseLogLevel(cfg.Logging.Level)
	slog.SetDefault(newLogger(os.Stderr, level))
	slog.Debug("logging initialized", "level", level.String())
	return level
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel maps a config value to a slog level, defaulting to error.
func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
