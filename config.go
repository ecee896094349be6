package harvest

import (
	"strings"
	"time"
)

// Default settings for a harvest run.
const (
	DefaultSitemapURL    = "https://brb.uz/sitemap-uz.xml"
	DefaultOutputPath    = "brb_scraped.jsonl"
	DefaultUserAgent     = "MyScraperBot/1.0 (+your-email@example.com)"
	DefaultTimeout       = 15 * time.Second
	DefaultMinDelay      = 800 * time.Millisecond
	DefaultMaxDelay      = 1500 * time.Millisecond
	DefaultMinTextLength = 50
)

// Extractor names accepted by Config.Extractor.
const (
	ExtractorSelectors   = "selectors"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// DefaultSelectors returns the content-region selectors, in priority order.
func DefaultSelectors() []string {
	return []string{"main", "article", ".content", ".article", ".news-item", "#content"}
}

// DefaultSkipSuffixes returns the URL suffixes of resources that are never fetched.
func DefaultSkipSuffixes() []string {
	return []string{".pdf", ".jpg", ".png", ".zip"}
}

// Config holds the settings for a harvest run.
type Config struct {
	SitemapURL string        `yaml:"sitemap_url"`
	OutputPath string        `yaml:"output"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`

	// MinDelay and MaxDelay bound the random pause between page fetches.
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`

	// MinTextLength is the shortest extracted text, in characters, that is kept.
	MinTextLength int `yaml:"min_text_length"`

	Selectors    []string `yaml:"selectors"`
	SkipSuffixes []string `yaml:"skip_suffixes"`
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
	Extractor    string   `yaml:"extractor"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		SitemapURL:    DefaultSitemapURL,
		OutputPath:    DefaultOutputPath,
		UserAgent:     DefaultUserAgent,
		Timeout:       DefaultTimeout,
		MinDelay:      DefaultMinDelay,
		MaxDelay:      DefaultMaxDelay,
		MinTextLength: DefaultMinTextLength,
		Selectors:     DefaultSelectors(),
		SkipSuffixes:  DefaultSkipSuffixes(),
		Extractor:     ExtractorSelectors,
	}
}

// Validate returns an error if the configuration cannot drive a run.
func (c *Config) Validate() error {
	if c.SitemapURL == "" {
		return Errorf(EINVALID, "sitemap URL required")
	}
	if c.OutputPath == "" {
		return Errorf(EINVALID, "output path required")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive, got %s", c.Timeout)
	}
	if c.MinDelay < 0 {
		return Errorf(EINVALID, "min delay must not be negative, got %s", c.MinDelay)
	}
	if c.MaxDelay < c.MinDelay {
		return Errorf(EINVALID, "min delay %s exceeds max delay %s; raise the max delay too", c.MinDelay, c.MaxDelay)
	}
	if c.MinTextLength < 0 {
		return Errorf(EINVALID, "min text length must not be negative")
	}
	switch c.Extractor {
	case ExtractorSelectors:
		if len(c.Selectors) == 0 {
			return Errorf(EINVALID, "at least one content selector required")
		}
	case ExtractorReadability, ExtractorTrafilatura:
	default:
		return Errorf(EINVALID, "unknown extractor %q (want %s)", c.Extractor,
			strings.Join([]string{ExtractorSelectors, ExtractorReadability, ExtractorTrafilatura}, ", "))
	}
	return nil
}
