package harvest

// Extractor turns an HTML page into a plain-text rendering of its main content.
type Extractor interface {
	// Extract returns the visible text of the page's primary content,
	// flattened to whitespace-joined words. A parsed page without content
	// gives an empty string; blank input may be rejected with EINVALID.
	Extract(html string) (string, error)
}
