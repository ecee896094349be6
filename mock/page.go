package mock

import (
	"context"

	"github.com/fwojciec/harvest"
)

var (
	_ harvest.PageHarvester = (*PageHarvester)(nil)
	_ harvest.Throttle      = (*Throttle)(nil)
)

// PageHarvester is a mock implementation of harvest.PageHarvester.
type PageHarvester struct {
	HarvestFn func(ctx context.Context, url string) harvest.Result
}

func (h *PageHarvester) Harvest(ctx context.Context, url string) harvest.Result {
	return h.HarvestFn(ctx, url)
}

// Throttle is a mock implementation of harvest.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
