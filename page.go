package harvest

import "context"

// Outcome classifies what happened to a single URL.
type Outcome int

// Outcomes reported for each processed URL.
const (
	// OutcomeExtracted means text worth keeping was extracted but not yet stored.
	OutcomeExtracted Outcome = iota + 1
	// OutcomeSaved means a record was appended to the sink.
	OutcomeSaved
	// OutcomeSkipped means the URL was deliberately not stored.
	OutcomeSkipped
	// OutcomeFailed means a fault prevented the URL from being stored.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeExtracted:
		return "extracted"
	case OutcomeSaved:
		return "saved"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SkipReason explains an OutcomeSkipped result.
type SkipReason string

// Reasons a URL is skipped.
const (
	SkipBinary   SkipReason = "binary"
	SkipStatus   SkipReason = "status"
	SkipTooShort SkipReason = "too-short"
)

// Result is the outcome of processing one URL.
type Result struct {
	URL     string
	Outcome Outcome

	// Reason is set when Outcome is OutcomeSkipped.
	Reason SkipReason

	// StatusCode is set when Reason is SkipStatus.
	StatusCode int

	// Text and Hash are set for extracted and saved pages.
	Text string
	Hash string

	// Err is set when Outcome is OutcomeFailed.
	Err error
}

// Record returns the sink record for an extracted result.
func (r Result) Record() *Record {
	return &Record{URL: r.URL, Text: r.Text, Hash: r.Hash}
}

// PageHarvester fetches a page and extracts its text.
// Per-page faults are reported in the Result rather than returned.
type PageHarvester interface {
	Harvest(ctx context.Context, url string) Result
}

// Throttle spaces out successive network requests.
type Throttle interface {
	// Wait blocks for the politeness delay.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
