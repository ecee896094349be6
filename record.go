package harvest

import "context"

// Record is one harvested page as persisted in the sink.
// Records are never updated or deleted once written.
type Record struct {
	URL  string `json:"url"`
	Text string `json:"text"`

	// Hash identifies Text in logs. It is not persisted.
	Hash string `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// URLSet is a set of URLs compared by exact string match.
type URLSet map[string]struct{}

// NewURLSet returns a set containing urls.
func NewURLSet(urls ...string) URLSet {
	s := make(URLSet, len(urls))
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Add inserts url into the set.
func (s URLSet) Add(url string) {
	s[url] = struct{}{}
}

// Has reports whether url is in the set.
func (s URLSet) Has(url string) bool {
	_, ok := s[url]
	return ok
}

// Len returns the number of URLs in the set.
func (s URLSet) Len() int {
	return len(s)
}

// Sink persists records to an append-only store.
type Sink interface {
	// Append durably writes rec as a new entry after all existing ones.
	// Previously written entries are never modified.
	Append(ctx context.Context, rec *Record) error
}

// Ledger derives the set of already harvested URLs from prior output.
type Ledger interface {
	// Done returns the URLs of every readable record in the store.
	// A store that does not exist yet yields an empty set.
	// Damaged entries are skipped rather than reported.
	Done(ctx context.Context) (URLSet, error)
}
