package crawl

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/fwojciec/harvest"
)

var _ harvest.PageHarvester = (*Harvester)(nil)

// Harvester fetches single pages and extracts their text.
//
// A Harvester is used by one goroutine at a time. It remembers whether it
// has already hit the network so that Throttle runs only between fetches,
// never before the first one or for URLs skipped without a request.
type Harvester struct {
	Fetcher   harvest.Fetcher
	Extractor harvest.Extractor

	// Throttle is waited on before every fetch except the first.
	// Nil disables the delay.
	Throttle harvest.Throttle

	// SkipSuffixes lists URL endings of resources that are never fetched.
	SkipSuffixes []string

	// MinTextLength is the shortest text, in characters, that is kept.
	MinTextLength int

	fetched bool
}

// NewHarvester returns a Harvester using the default skip suffixes and
// minimum text length.
func NewHarvester(fetcher harvest.Fetcher, extractor harvest.Extractor, throttle harvest.Throttle) *Harvester {
	return &Harvester{
		Fetcher:       fetcher,
		Extractor:     extractor,
		Throttle:      throttle,
		SkipSuffixes:  harvest.DefaultSkipSuffixes(),
		MinTextLength: harvest.DefaultMinTextLength,
	}
}

// Harvest classifies url as extracted, skipped or failed. Faults are carried
// in the returned Result.
func (h *Harvester) Harvest(ctx context.Context, url string) harvest.Result {
	if IsBinaryURL(url, h.SkipSuffixes) {
		return harvest.Result{URL: url, Outcome: harvest.OutcomeSkipped, Reason: harvest.SkipBinary}
	}

	if h.fetched && h.Throttle != nil {
		if err := h.Throttle.Wait(ctx); err != nil {
			return harvest.Result{URL: url, Outcome: harvest.OutcomeFailed, Err: err}
		}
	}
	h.fetched = true

	html, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		var se *harvest.StatusError
		if errors.As(err, &se) {
			return harvest.Result{
				URL:        url,
				Outcome:    harvest.OutcomeSkipped,
				Reason:     harvest.SkipStatus,
				StatusCode: se.StatusCode,
			}
		}
		return harvest.Result{URL: url, Outcome: harvest.OutcomeFailed, Err: err}
	}

	text, err := h.Extractor.Extract(html)
	if err != nil {
		return harvest.Result{URL: url, Outcome: harvest.OutcomeFailed, Err: err}
	}

	if text == "" || utf8.RuneCountInString(text) < h.MinTextLength {
		return harvest.Result{URL: url, Outcome: harvest.OutcomeSkipped, Reason: harvest.SkipTooShort}
	}

	return harvest.Result{
		URL:     url,
		Outcome: harvest.OutcomeExtracted,
		Text:    text,
		Hash:    ComputeHash(text),
	}
}
