package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/harvest"
	"golang.org/x/net/html/charset"
)

// Ensure SitemapReader implements harvest.SitemapReader.
var _ harvest.SitemapReader = (*SitemapReader)(nil)

// SitemapReader reads page URLs from a single sitemap document via HTTP.
type SitemapReader struct {
	client    *http.Client
	userAgent string
}

// NewSitemapReader creates a new SitemapReader with the given HTTP client.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewSitemapReader(client *http.Client, userAgent string) *SitemapReader {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapReader{client: client, userAgent: userAgent}
}

// ReadURLs fetches the sitemap and returns its <url><loc> values in document order.
// Sitemap indexes are not followed: a <sitemapindex> yields no URLs.
func (s *SitemapReader) ReadURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := get(ctx, s.client, sitemapURL, s.userAgent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, harvest.Errorf(harvest.EFETCH, "fetching sitemap %s: %v", sitemapURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, harvest.Errorf(harvest.EFETCH, "fetching sitemap %s: HTTP %d", sitemapURL, resp.StatusCode)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, harvest.Errorf(harvest.EPARSE, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, harvest.Errorf(harvest.EPARSE, "empty sitemap XML")
	}
	if ns := root.NamespaceURI(); ns != harvest.SitemapNamespace {
		return nil, harvest.Errorf(harvest.EPARSE, "unexpected sitemap namespace %q on <%s>", ns, root.Tag)
	}

	urls := []string{}
	collectLocs(root, &urls)
	return urls, nil
}

// collectLocs appends the first <loc> of every sitemap <url> beneath el, depth first.
func collectLocs(el *etree.Element, urls *[]string) {
	for _, child := range el.ChildElements() {
		if isSitemapElement(child, "url") {
			if u := locText(child); u != "" {
				*urls = append(*urls, u)
			}
		}
		collectLocs(child, urls)
	}
}

func locText(urlEl *etree.Element) string {
	for _, child := range urlEl.ChildElements() {
		if isSitemapElement(child, "loc") {
			return strings.TrimSpace(child.Text())
		}
	}
	return ""
}

func isSitemapElement(el *etree.Element, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == harvest.SitemapNamespace
}
