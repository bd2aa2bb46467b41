package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distcheck"
)

// Ensure LoggingPathChecker implements distcheck.PathChecker.
var _ distcheck.PathChecker = (*LoggingPathChecker)(nil)

// LoggingPathChecker wraps a PathChecker with debug logging of every probe.
type LoggingPathChecker struct {
	next   distcheck.PathChecker
	logger *slog.Logger
}

// NewLoggingPathChecker creates a new LoggingPathChecker.
func NewLoggingPathChecker(next distcheck.PathChecker, logger *slog.Logger) *LoggingPathChecker {
	return &LoggingPathChecker{next: next, logger: logger}
}

// Exists delegates to the wrapped checker and logs the probe.
func (c *LoggingPathChecker) Exists(path string) (exists bool) {
	defer func(begin time.Time) {
		c.logger.Log(context.Background(), slog.LevelDebug, "path probe",
			"path", path,
			"exists", exists,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Exists(path)
}
