package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var _ harvest.SitemapReader = (*SitemapReader)(nil)

// SitemapReader is a mock implementation of harvest.SitemapReader.
type SitemapReader struct {
	ReadURLsFn func(ctx context.Context, sitemapURL string) ([]string, error)
}

func (s *SitemapReader) ReadURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	return s.ReadURLsFn(ctx, sitemapURL)
}
