package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

// Ensure LoggingSitemapReader implements harvest.SitemapReader.
var _ harvest.SitemapReader = (*LoggingSitemapReader)(nil)

// LoggingSitemapReader wraps a SitemapReader with debug logging.
type LoggingSitemapReader struct {
	next   harvest.SitemapReader
	logger *slog.Logger
}

// NewLoggingSitemapReader creates a new LoggingSitemapReader.
func NewLoggingSitemapReader(next harvest.SitemapReader, logger *slog.Logger) *LoggingSitemapReader {
	return &LoggingSitemapReader{next: next, logger: logger}
}

// ReadURLs delegates to the wrapped reader and logs the operation.
func (s *LoggingSitemapReader) ReadURLs(ctx context.Context, sitemapURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap read",
			"url", sitemapURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadURLs(ctx, sitemapURL)
}
