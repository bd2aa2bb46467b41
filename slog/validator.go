package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distcheck"
)

// Ensure LoggingValidator implements distcheck.Validator.
var _ distcheck.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator with logging.
type LoggingValidator struct {
	next   distcheck.Validator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next distcheck.Validator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Name delegates to the wrapped validator.
func (v *LoggingValidator) Name() string {
	return v.next.Name()
}

// Label delegates to the wrapped validator.
func (v *LoggingValidator) Label() string {
	return v.next.Label()
}

// Validate delegates to the wrapped validator and logs the outcome.
func (v *LoggingValidator) Validate(ctx context.Context, dir string) (report *distcheck.Report, err error) {
	defer func(begin time.Time) {
		var pages, warnings int
		if report != nil {
			pages = report.CheckedPages
			warnings = len(report.Warnings)
		}
		v.logger.Info("validation",
			"name", v.next.Name(),
			"dir", dir,
			"pages", pages,
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Validate(ctx, dir)
}
