// Package crawl runs a harvest: it walks the sitemap, skips pages harvested
// by earlier runs, and stores the text of every new page.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/harvest"
)

// Runner drives one harvest run over a sitemap.
type Runner struct {
	Sitemap harvest.SitemapReader
	Ledger  harvest.Ledger
	Sink    harvest.Sink
	Pages   harvest.PageHarvester

	// Filter restricts which sitemap URLs are considered. Nil keeps all.
	Filter *harvest.URLFilter
}

// Summary holds the counts of a finished run.
type Summary struct {
	// Total is the number of URLs considered after filtering.
	Total int
	// Resumed is the size of the resume set read at startup.
	Resumed int
	// Done counts URLs passed over because they were already harvested.
	Done    int
	Saved   int
	Skipped int
	Failed  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressDiscovered is sent once the sitemap has been read; Count is the URL total.
	ProgressDiscovered ProgressType = iota
	// ProgressResumed is sent once the resume set is known; Count is its size.
	ProgressResumed
	// ProgressPage is sent after each URL that was not already harvested.
	ProgressPage
	// ProgressFinished is sent when every URL has been considered.
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type ProgressType

	// Index is the 1-based position of the URL in the sitemap list and
	// Total is that list's length.
	Index int
	Total int

	Count  int
	Result harvest.Result
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run harvests every URL listed at sitemapURL that is not yet in the ledger.
//
// Failing to read the sitemap or the ledger aborts the run before any page
// is fetched. Everything after that is reported per URL through progress and
// never stops the loop, except cancellation of ctx, which returns the counts
// so far together with ctx.Err().
func (r *Runner) Run(ctx context.Context, sitemapURL string, progress ProgressFunc) (*Summary, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	urls, err := r.Sitemap.ReadURLs(ctx, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	urls = r.Filter.Apply(urls)
	total := len(urls)
	progress(ProgressEvent{Type: ProgressDiscovered, Count: total, Total: total})

	done, err := r.Ledger.Done(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume ledger: %w", err)
	}
	summary := &Summary{Total: total, Resumed: done.Len()}
	progress(ProgressEvent{Type: ProgressResumed, Count: done.Len(), Total: total})

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if done.Has(u) {
			summary.Done++
			continue
		}

		res := r.Pages.Harvest(ctx, u)
		if res.Outcome == harvest.OutcomeExtracted {
			res = r.store(ctx, res)
		}
		if res.Outcome == harvest.OutcomeFailed && ctx.Err() != nil {
			// Interrupted mid-page: the URL stays pending for the next run.
			return summary, ctx.Err()
		}
		if res.Outcome == harvest.OutcomeSaved {
			done.Add(u)
		}

		switch res.Outcome {
		case harvest.OutcomeSaved:
			summary.Saved++
		case harvest.OutcomeSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		progress(ProgressEvent{Type: ProgressPage, Index: i + 1, Total: total, Result: res})
	}

	progress(ProgressEvent{Type: ProgressFinished, Count: summary.Saved, Total: total})
	return summary, nil
}

// store appends an extracted result to the sink.
func (r *Runner) store(ctx context.Context, res harvest.Result) harvest.Result {
	if err := r.Sink.Append(ctx, res.Record()); err != nil {
		res.Outcome = harvest.OutcomeFailed
		res.Err = fmt.Errorf("saving: %w", err)
		return res
	}
	res.Outcome = harvest.OutcomeSaved
	return res
}
