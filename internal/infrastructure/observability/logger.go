package observability

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger installs a JSON slog handler on stdout as the default logger.
// Unknown levels fall back to info.
func InitLogger(serviceName, level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler).With("service", serviceName))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
