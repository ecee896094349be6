// Package fs provides file-based storage for harvested records.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/harvest"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Ensure RecordLog implements harvest.Sink and harvest.Ledger at compile time.
var (
	_ harvest.Sink   = (*RecordLog)(nil)
	_ harvest.Ledger = (*RecordLog)(nil)
)

// RecordLog stores records as JSON Lines in a single append-only file.
// The same file is the resume ledger for later runs.
type RecordLog struct {
	path string
}

// NewRecordLog creates a RecordLog backed by the file at path.
// The file is created on the first Append.
func NewRecordLog(path string) *RecordLog {
	return &RecordLog{path: path}
}

// Path returns the location of the backing file.
func (l *RecordLog) Path() string {
	return l.path
}

// Append writes rec as one JSON line at the end of the file and syncs it to
// disk before returning. If a previous run left a partial last line, a
// newline is written first so the new record starts on its own line.
func (l *RecordLog) Append(ctx context.Context, rec *harvest.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	// Text is written literally, markup and line separators included.
	// Invalid UTF-8 is replaced rather than rejected.
	line, err := json.Marshal(rec, jsontext.AllowInvalidUTF8(true))
	if err != nil {
		return harvest.Errorf(harvest.EINVALID, "encoding record for %s: %v", rec.URL, err)
	}
	line = append(line, '\n')

	f, err := os.OpenFile(l.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()

	terminated, err := endsWithNewline(f)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", l.path, err)
	}
	if !terminated {
		line = append([]byte{'\n'}, line...)
	}

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("writing %s: %w", l.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", l.path, err)
	}
	return f.Close()
}

// endsWithNewline reports whether f is empty or its last byte is '\n'.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// readOptions accept any record a lenient JSON reader would.
var readOptions = json.JoinOptions(
	json.MatchCaseInsensitiveNames(true),
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

// Done returns the URL of every record that can be read back from the file.
// Lines that are not valid JSON objects, or that lack a non-empty url, are
// skipped. A missing file yields an empty set.
func (l *RecordLog) Done(ctx context.Context) (harvest.URLSet, error) {
	done := harvest.NewURLSet()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return done, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", l.path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, readErr := r.ReadBytes('\n')
		if line = bytes.TrimSpace(line); len(line) > 0 {
			var rec harvest.Record
			if err := json.Unmarshal(line, &rec, readOptions); err == nil && rec.URL != "" {
				done.Add(rec.URL)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return done, nil
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading %s: %w", l.path, readErr)
		}
	}
}
