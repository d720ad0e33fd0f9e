package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogLevel reads LOG_LEVEL (debug, info, warn, error). Development defaults
// to debug, everything else to warn so the board is not drowned in logs.
func LogLevel() slog.Level {
	level := slog.LevelWarn
	if Development() {
		level = slog.LevelDebug
	}
	if s, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var l slog.Level
		if err := l.UnmarshalText([]byte(s)); err == nil {
			level = l
		}
	}
	return level
}

func NewLogger(w io.Writer) *slog.Logger {
	level := LogLevel()
	if Development() {
		return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
