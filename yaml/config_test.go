package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harvest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides only the keys present", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `sitemap_url: "https://example.com/sitemap.xml"
output: "example.jsonl"
timeout: "30s"
min_delay: "100ms"
max_delay: "200ms"
`)

		cfg, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/sitemap.xml", cfg.SitemapURL)
		assert.Equal(t, "example.jsonl", cfg.OutputPath)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 100*time.Millisecond, cfg.MinDelay)
		assert.Equal(t, 200*time.Millisecond, cfg.MaxDelay)
		assert.Equal(t, harvest.DefaultUserAgent, cfg.UserAgent)
		assert.Equal(t, harvest.DefaultMinTextLength, cfg.MinTextLength)
		assert.Equal(t, harvest.DefaultSelectors(), cfg.Selectors)
	})

	t.Run("replaces lists", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `selectors:
  - ".post-body"
  - "#main"
skip_suffixes: [".pdf", ".docx"]
include: ["/news/"]
extractor: readability
`)

		cfg, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.NoError(t, err)
		assert.Equal(t, []string{".post-body", "#main"}, cfg.Selectors)
		assert.Equal(t, []string{".pdf", ".docx"}, cfg.SkipSuffixes)
		assert.Equal(t, []string{"/news/"}, cfg.Include)
		assert.Equal(t, harvest.ExtractorReadability, cfg.Extractor)
	})

	t.Run("empty file keeps the base", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "")

		cfg, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.NoError(t, err)
		assert.Equal(t, harvest.DefaultConfig(), cfg)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), harvest.DefaultConfig())

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "concurrency: 10\n")

		_, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.Error(t, err)
		assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "selectors:\n  nested: [unterminated\n")

		_, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.Error(t, err)
		assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
	})

	t.Run("bad duration is rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "timeout: soon\n")

		_, err := yaml.LoadConfig(path, harvest.DefaultConfig())

		require.Error(t, err)
		assert.Equal(t, harvest.EINVALID, harvest.ErrorCode(err))
	})
}
