package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/harvest"
)

// Ensure the decorators implement their interfaces.
var (
	_ harvest.Sink   = (*LoggingSink)(nil)
	_ harvest.Ledger = (*LoggingLedger)(nil)
)

// LoggingSink wraps a Sink with debug logging.
type LoggingSink struct {
	next   harvest.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next harvest.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Append delegates to the wrapped sink and logs the stored record together
// with the content hash computed when its text was extracted.
func (s *LoggingSink) Append(ctx context.Context, rec *harvest.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("append",
			"url", rec.URL,
			"chars", utf8.RuneCountInString(rec.Text),
			"hash", rec.Hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Append(ctx, rec)
}

// LoggingLedger wraps a Ledger with debug logging.
type LoggingLedger struct {
	next   harvest.Ledger
	logger *slog.Logger
}

// NewLoggingLedger creates a new LoggingLedger.
func NewLoggingLedger(next harvest.Ledger, logger *slog.Logger) *LoggingLedger {
	return &LoggingLedger{next: next, logger: logger}
}

// Done delegates to the wrapped ledger and logs the resume set size.
func (l *LoggingLedger) Done(ctx context.Context) (done harvest.URLSet, err error) {
	defer func(begin time.Time) {
		l.logger.Info("resume scan",
			"count", done.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Done(ctx)
}
