package main_test

import (
	"testing"
	"time"

	"github.com/fwojciec/harvest"
	main "github.com/fwojciec/harvest/cmd/harvest"
	"github.com/stretchr/testify/assert"
)

func duration(d time.Duration) *time.Duration {
	return &d
}

func TestCLI_Apply(t *testing.T) {
	t.Parallel()

	t.Run("no flags keeps the configuration", func(t *testing.T) {
		t.Parallel()

		cfg := harvest.DefaultConfig()
		(&main.CLI{}).Apply(&cfg)

		assert.Equal(t, harvest.DefaultConfig(), cfg)
	})

	t.Run("set flags override", func(t *testing.T) {
		t.Parallel()

		cfg := harvest.DefaultConfig()
		cli := &main.CLI{
			Sitemap:   "https://example.com/sitemap.xml",
			Output:    "out.jsonl",
			UserAgent: "TestBot/1.0",
			Timeout:   duration(5 * time.Second),
			MinDelay:  duration(time.Second),
			MaxDelay:  duration(2 * time.Second),
			Include:   []string{`/news/`},
			Exclude:   []string{`/news/old`},
			Extractor: harvest.ExtractorTrafilatura,
		}

		cli.Apply(&cfg)

		assert.Equal(t, "https://example.com/sitemap.xml", cfg.SitemapURL)
		assert.Equal(t, "out.jsonl", cfg.OutputPath)
		assert.Equal(t, "TestBot/1.0", cfg.UserAgent)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, time.Second, cfg.MinDelay)
		assert.Equal(t, 2*time.Second, cfg.MaxDelay)
		assert.Equal(t, []string{`/news/`}, cfg.Include)
		assert.Equal(t, []string{`/news/old`}, cfg.Exclude)
		assert.Equal(t, harvest.ExtractorTrafilatura, cfg.Extractor)
		assert.Equal(t, harvest.DefaultSelectors(), cfg.Selectors)
	})

	t.Run("no-delay clears both bounds", func(t *testing.T) {
		t.Parallel()

		cfg := harvest.DefaultConfig()
		(&main.CLI{NoDelay: true}).Apply(&cfg)

		assert.Zero(t, cfg.MinDelay)
		assert.Zero(t, cfg.MaxDelay)
	})
	t.Run("explicit zero delays override", func(t *testing.T) {
		t.Parallel()

		cfg := harvest.DefaultConfig()
		(&main.CLI{MinDelay: duration(0), MaxDelay: duration(0)}).Apply(&cfg)

		assert.Zero(t, cfg.MinDelay)
		assert.Zero(t, cfg.MaxDelay)
	})
}
