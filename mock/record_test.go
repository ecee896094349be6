package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Sink is expected
	var _ harvest.Sink = &mock.Sink{}
}

func TestSink_Append(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AppendFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *harvest.Record
		s := &mock.Sink{
			AppendFn: func(_ context.Context, rec *harvest.Record) error {
				calledWith = rec
				return nil
			},
		}

		rec := &harvest.Record{URL: "https://example.com/doc", Text: "Test content"}

		err := s.Append(context.Background(), rec)

		require.NoError(t, err)
		assert.Equal(t, rec, calledWith)
	})
}

func TestLedger_Done(t *testing.T) {
	t.Parallel()

	t.Run("delegates to DoneFn", func(t *testing.T) {
		t.Parallel()

		l := &mock.Ledger{
			DoneFn: func(_ context.Context) (harvest.URLSet, error) {
				return harvest.NewURLSet("https://example.com/a"), nil
			},
		}

		done, err := l.Done(context.Background())

		require.NoError(t, err)
		assert.True(t, done.Has("https://example.com/a"))
	})
}
