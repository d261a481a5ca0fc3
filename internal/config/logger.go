package config

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a leveled logger writing to w. The level is read from
// ASTEROIDS_LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(GetEnv("ASTEROIDS_LOG_LEVEL", "info")))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// DiscardLogger returns a logger that drops everything. Used when a caller
// does not supply one.
func DiscardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
