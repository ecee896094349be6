package crawl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// FormatChars formats a character count with thousands separators, e.g. "1,234".
func FormatChars(n int) string {
	return printer.Sprintf("%d", n)
}

// IsBinaryURL reports whether rawURL names a non-text resource: its path,
// or the raw URL itself, ends with one of suffixes. Matching ignores case.
func IsBinaryURL(rawURL string, suffixes []string) bool {
	candidates := []string{strings.ToLower(rawURL)}
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		candidates = append(candidates, strings.ToLower(u.Path))
	}
	for _, suffix := range suffixes {
		if suffix == "" {
			continue
		}
		suffix = strings.ToLower(suffix)
		for _, c := range candidates {
			if strings.HasSuffix(c, suffix) {
				return true
			}
		}
	}
	return false
}
