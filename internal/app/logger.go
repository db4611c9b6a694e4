package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/editorial-admin/internal/config"
)

// redactedKeys are attribute keys whose values never reach the log:
// access tokens, confirmation tokens and configured secrets.
var redactedKeys = map[string]bool{
	"authorization":      true,
	"token":              true,
	"access_token":       true,
	"confirmation_token": true,
	"secret":             true,
	"jwt_secret":         true,
	"dsn":                true,
}

// NewLogger creates the process logger on stderr and installs it as the
// slog default. Format "json" is for production; "text" adds source
// locations for local runs. Level is debug, info, warn or error
// (case-insensitive, default info). Every line carries app=editorial-admin.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "editorial-admin"))
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
