package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/crawl"
)

// Run executes the harvest.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	_, err := deps.Runner.Run(deps.Ctx, c.SitemapURL, progressPrinter(deps.Stdout))
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(deps.Stdout, "\nInterrupted. Progress saved to: %s\n", c.OutputPath)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n✅ Done. All data saved to: %s\n", c.OutputPath)
	return nil
}

// progressPrinter returns a callback writing one line per run event to w.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressDiscovered:
			fmt.Fprintf(w, "Found %d URLs in sitemap\n", e.Count)
		case crawl.ProgressResumed:
			fmt.Fprintf(w, "Already scraped %d pages, skipping those\n", e.Count)
		case crawl.ProgressPage:
			printResult(w, e)
		}
	}
}

func printResult(w io.Writer, e crawl.ProgressEvent) {
	res := e.Result
	switch {
	case res.Outcome == harvest.OutcomeSaved:
		fmt.Fprintf(w, "[%d/%d] %s -> %s chars (saved)\n",
			e.Index, e.Total, res.URL, crawl.FormatChars(utf8.RuneCountInString(res.Text)))
	case res.Reason == harvest.SkipTooShort:
		fmt.Fprintf(w, "[%d/%d] %s -> too short, skipped\n", e.Index, e.Total, res.URL)
	case res.Reason == harvest.SkipStatus:
		fmt.Fprintf(w, "[skip] %s (%d)\n", res.URL, res.StatusCode)
	case res.Reason == harvest.SkipBinary:
		fmt.Fprintf(w, "[skip] %s (non-text resource)\n", res.URL)
	case res.Outcome == harvest.OutcomeFailed:
		fmt.Fprintf(w, "[error] %s: %s\n", res.URL, errorMessage(res.Err))
	}
}
