package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner *crawl.Runner
}

// CLI defines the command-line interface structure for Kong.
// Every flag is optional; unset flags leave the configuration untouched.
// Durations are pointers so that an explicit zero is told apart from unset.
type CLI struct {
	Config    string         `short:"c" help:"YAML configuration file"`
	Sitemap   string         `short:"s" help:"Sitemap URL (default: ${sitemap})" placeholder:"URL"`
	Output    string         `short:"o" help:"JSON Lines output file, also used to resume (default: ${output})" placeholder:"PATH"`
	UserAgent string         `name:"user-agent" help:"User-Agent header for every request"`
	Timeout   *time.Duration `short:"t" help:"Timeout per request (default: ${timeout})"`
	MinDelay  *time.Duration `name:"min-delay" help:"Shortest pause between page fetches, at most --max-delay (default: ${min_delay})"`
	MaxDelay  *time.Duration `name:"max-delay" help:"Longest pause between page fetches, at least --min-delay (default: ${max_delay})"`
	NoDelay   bool           `name:"no-delay" help:"Do not pause between page fetches"`
	Include   []string       `short:"i" sep:"none" help:"Only harvest URLs matching regex (repeatable)"`
	Exclude   []string       `short:"x" sep:"none" help:"Never harvest URLs matching regex (repeatable)"`
	Extractor string         `short:"e" help:"Text extractor: selectors, readability or trafilatura (default: selectors)"`
	Verbose   bool           `short:"v" help:"Log every request and write to stderr"`
}

// Apply overrides cfg with every flag that was set.
func (c *CLI) Apply(cfg *harvest.Config) {
	if c.Sitemap != "" {
		cfg.SitemapURL = c.Sitemap
	}
	if c.Output != "" {
		cfg.OutputPath = c.Output
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.Timeout != nil {
		cfg.Timeout = *c.Timeout
	}
	if c.MinDelay != nil {
		cfg.MinDelay = *c.MinDelay
	}
	if c.MaxDelay != nil {
		cfg.MaxDelay = *c.MaxDelay
	}
	if c.NoDelay {
		cfg.MinDelay, cfg.MaxDelay = 0, 0
	}
	if len(c.Include) > 0 {
		cfg.Include = c.Include
	}
	if len(c.Exclude) > 0 {
		cfg.Exclude = c.Exclude
	}
	if c.Extractor != "" {
		cfg.Extractor = c.Extractor
	}
}

// HarvestCmd runs one harvest and reports progress on stdout.
type HarvestCmd struct {
	SitemapURL string
	OutputPath string
}
