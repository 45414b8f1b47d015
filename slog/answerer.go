// Package slog provides logging decorators for presrag services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/presrag"
)

// Ensure LoggingAnswerer implements presrag.Answerer.
var _ presrag.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with debug logging.
type LoggingAnswerer struct {
	next   presrag.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next presrag.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation.
func (a *LoggingAnswerer) Answer(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("answer",
			"question", question,
			"bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, question)
}
