package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/harvest"
	main "github.com/fwojciec/harvest/cmd/harvest"
	"github.com/fwojciec/harvest/crawl"
	"github.com/fwojciec/harvest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Console Progress
// Every URL produces one line describing what happened to it.

func TestHarvestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per outcome", func(t *testing.T) {
		t.Parallel()

		// Given a sitemap with one URL of each kind, one already saved
		long := strings.Repeat("a", 1234)
		runner := &crawl.Runner{
			Sitemap: &mock.SitemapReader{ReadURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{
					"https://brb.uz/done",
					"https://brb.uz/ok",
					"https://brb.uz/short",
					"https://brb.uz/gone",
					"https://brb.uz/doc.pdf",
					"https://brb.uz/broken",
				}, nil
			}},
			Ledger: &mock.Ledger{DoneFn: func(_ context.Context) (harvest.URLSet, error) {
				return harvest.NewURLSet("https://brb.uz/done"), nil
			}},
			Sink: &mock.Sink{AppendFn: func(_ context.Context, _ *harvest.Record) error { return nil }},
			Pages: &mock.PageHarvester{HarvestFn: func(_ context.Context, url string) harvest.Result {
				switch url {
				case "https://brb.uz/ok":
					return harvest.Result{URL: url, Outcome: harvest.OutcomeExtracted, Text: long}
				case "https://brb.uz/short":
					return harvest.Result{URL: url, Outcome: harvest.OutcomeSkipped, Reason: harvest.SkipTooShort}
				case "https://brb.uz/gone":
					return harvest.Result{URL: url, Outcome: harvest.OutcomeSkipped, Reason: harvest.SkipStatus, StatusCode: 404}
				case "https://brb.uz/doc.pdf":
					return harvest.Result{URL: url, Outcome: harvest.OutcomeSkipped, Reason: harvest.SkipBinary}
				default:
					return harvest.Result{URL: url, Outcome: harvest.OutcomeFailed, Err: errors.New("read: connection reset by peer")}
				}
			}},
		}
		var stdout bytes.Buffer
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &stdout,
			Stderr: &bytes.Buffer{},
			Runner: runner,
		}
		cmd := &main.HarvestCmd{SitemapURL: "https://brb.uz/sitemap-uz.xml", OutputPath: "brb_scraped.jsonl"}

		// When the command runs
		err := cmd.Run(deps)

		// Then the console shows the run line by line
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"Found 6 URLs in sitemap",
			"Already scraped 1 pages, skipping those",
			"[2/6] https://brb.uz/ok -> 1,234 chars (saved)",
			"[3/6] https://brb.uz/short -> too short, skipped",
			"[skip] https://brb.uz/gone (404)",
			"[skip] https://brb.uz/doc.pdf (non-text resource)",
			"[error] https://brb.uz/broken: read: connection reset by peer",
			"",
			"✅ Done. All data saved to: brb_scraped.jsonl",
			"",
		}, "\n"), stdout.String())
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Sitemap: &mock.SitemapReader{ReadURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"https://brb.uz/uz"}, nil
			}},
			Ledger: &mock.Ledger{DoneFn: func(_ context.Context) (harvest.URLSet, error) {
				return harvest.NewURLSet(), nil
			}},
			Sink: &mock.Sink{AppendFn: func(_ context.Context, _ *harvest.Record) error { return nil }},
			Pages: &mock.PageHarvester{HarvestFn: func(_ context.Context, url string) harvest.Result {
				return harvest.Result{URL: url, Outcome: harvest.OutcomeExtracted, Text: strings.Repeat("ў", 60)}
			}},
		}
		var stdout bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &bytes.Buffer{}, Runner: runner}

		err := (&main.HarvestCmd{OutputPath: "out.jsonl"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[1/1] https://brb.uz/uz -> 60 chars (saved)")
	})

	t.Run("returns sitemap errors without a done line", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Sitemap: &mock.SitemapReader{ReadURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, harvest.Errorf(harvest.EPARSE, "sitemap is not valid XML")
			}},
		}
		var stdout bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &bytes.Buffer{}, Runner: runner}

		err := (&main.HarvestCmd{OutputPath: "out.jsonl"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, harvest.EPARSE, harvest.ErrorCode(err))
		assert.NotContains(t, stdout.String(), "Done")
	})
	t.Run("interrupt mid-page prints no error line", func(t *testing.T) {
		t.Parallel()

		// Given a run that is interrupted while the second page is fetched
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		runner := &crawl.Runner{
			Sitemap: &mock.SitemapReader{ReadURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"https://brb.uz/a", "https://brb.uz/b"}, nil
			}},
			Ledger: &mock.Ledger{DoneFn: func(_ context.Context) (harvest.URLSet, error) {
				return harvest.NewURLSet(), nil
			}},
			Sink: &mock.Sink{AppendFn: func(_ context.Context, _ *harvest.Record) error { return nil }},
			Pages: &mock.PageHarvester{HarvestFn: func(ctx context.Context, url string) harvest.Result {
				if url == "https://brb.uz/b" {
					cancel()
					return harvest.Result{URL: url, Outcome: harvest.OutcomeFailed, Err: ctx.Err()}
				}
				return harvest.Result{URL: url, Outcome: harvest.OutcomeExtracted, Text: strings.Repeat("a", 60)}
			}},
		}
		var stdout bytes.Buffer
		deps := &main.Dependencies{Ctx: ctx, Stdout: &stdout, Stderr: &bytes.Buffer{}, Runner: runner}

		// When the command runs
		err := (&main.HarvestCmd{OutputPath: "out.jsonl"}).Run(deps)

		// Then the interrupted URL is not reported and the banner closes the output
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, strings.Join([]string{
			"Found 2 URLs in sitemap",
			"Already scraped 0 pages, skipping those",
			"[1/2] https://brb.uz/a -> 60 chars (saved)",
			"",
			"Interrupted. Progress saved to: out.jsonl",
			"",
		}, "\n"), stdout.String())
	})
}
