package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var (
	_ harvest.Sink   = (*Sink)(nil)
	_ harvest.Ledger = (*Ledger)(nil)
)

// Sink is a mock implementation of harvest.Sink.
type Sink struct {
	AppendFn func(ctx context.Context, rec *harvest.Record) error
}

func (s *Sink) Append(ctx context.Context, rec *harvest.Record) error {
	return s.AppendFn(ctx, rec)
}

// Ledger is a mock implementation of harvest.Ledger.
type Ledger struct {
	DoneFn func(ctx context.Context) (harvest.URLSet, error)
}

func (l *Ledger) Done(ctx context.Context) (harvest.URLSet, error) {
	return l.DoneFn(ctx)
}
