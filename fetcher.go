package harvest

import "context"

// Fetcher retrieves page HTML over the network.
type Fetcher interface {
	// Fetch performs a single GET of url and returns the body decoded to UTF-8.
	// A response with a non-200 status returns a *StatusError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
