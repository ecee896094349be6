package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/crawl"
	"github.com/fwojciec/harvest/fs"
	"github.com/fwojciec/harvest/goquery"
	harvesthttp "github.com/fwojciec/harvest/http"
	"github.com/fwojciec/harvest/readability"
	harvestslog "github.com/fwojciec/harvest/slog"
	"github.com/fwojciec/harvest/trafilatura"
	"github.com/fwojciec/harvest/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is the base configuration that the config file and flags
	// override. Set before calling Run().
	Config harvest.Config

	// HTTPClient, if set, is used for all requests instead of a default client.
	HTTPClient *http.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: harvest.DefaultConfig(),
	}
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned, except for an interrupt, which the harvest
// command has already announced.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "error: %s\n", errorMessage(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("harvest"),
		kong.Description("Harvest the text of every page listed in a sitemap into a JSON Lines file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help
		kong.Vars{
			"sitemap":   m.Config.SitemapURL,
			"output":    m.Config.OutputPath,
			"timeout":   m.Config.Timeout.String(),
			"min_delay": m.Config.MinDelay.String(),
			"max_delay": m.Config.MaxDelay.String(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		// Help was printed; the remaining flags are ignored.
		return nil
	}
	if err != nil {
		return err
	}

	cfg := m.Config
	if cli.Config != "" {
		if cfg, err = yaml.LoadConfig(cli.Config, cfg); err != nil {
			return err
		}
	}
	cli.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner, fetcher, err := m.newRunner(cfg, cli.Verbose, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Runner: runner,
	}

	cmd := &HarvestCmd{
		SitemapURL: cfg.SitemapURL,
		OutputPath: cfg.OutputPath,
	}

	return cmd.Run(deps)
}

// newRunner wires the harvest components for cfg. With verbose set, every
// component logs its calls to stderr. The returned fetcher must be closed
// once the run is over.
func (m *Main) newRunner(cfg harvest.Config, verbose bool, stderr io.Writer) (*crawl.Runner, harvest.Fetcher, error) {
	filter, err := harvest.NewURLFilter(cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fetcherOpts := []harvesthttp.Option{
		harvesthttp.WithTimeout(cfg.Timeout),
		harvesthttp.WithUserAgent(cfg.UserAgent),
	}
	sitemapClient := &http.Client{Timeout: cfg.Timeout}
	if m.HTTPClient != nil {
		fetcherOpts = append(fetcherOpts, harvesthttp.WithClient(m.HTTPClient))
		c := *m.HTTPClient
		c.Timeout = cfg.Timeout
		sitemapClient = &c
	}

	var (
		sitemap   harvest.SitemapReader = harvesthttp.NewSitemapReader(sitemapClient, cfg.UserAgent)
		fetcher   harvest.Fetcher       = harvesthttp.NewFetcher(fetcherOpts...)
		extractor harvest.Extractor     = newExtractor(cfg)
		records                         = fs.NewRecordLog(cfg.OutputPath)
		ledger    harvest.Ledger        = records
		sink      harvest.Sink          = records
	)

	if verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
		sitemap = harvestslog.NewLoggingSitemapReader(sitemap, logger)
		fetcher = harvestslog.NewLoggingFetcher(fetcher, logger)
		extractor = harvestslog.NewLoggingExtractor(extractor, logger)
		ledger = harvestslog.NewLoggingLedger(ledger, logger)
		sink = harvestslog.NewLoggingSink(sink, logger)
	}

	pages := crawl.NewHarvester(fetcher, extractor, crawl.NewJitterThrottle(cfg.MinDelay, cfg.MaxDelay))
	pages.SkipSuffixes = cfg.SkipSuffixes
	pages.MinTextLength = cfg.MinTextLength

	return &crawl.Runner{
		Sitemap: sitemap,
		Ledger:  ledger,
		Sink:    sink,
		Pages:   pages,
		Filter:  filter,
	}, fetcher, nil
}

// newExtractor returns the extractor named by cfg.Extractor.
func newExtractor(cfg harvest.Config) harvest.Extractor {
	switch cfg.Extractor {
	case harvest.ExtractorReadability:
		return readability.NewExtractor()
	case harvest.ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor(cfg.Selectors...)
	}
}

// errorMessage returns the user-facing text for err.
func errorMessage(err error) string {
	if harvest.ErrorCode(err) == harvest.EINTERNAL {
		return err.Error()
	}
	return harvest.ErrorMessage(err)
}
