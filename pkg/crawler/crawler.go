package crawler

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/authors"
	"quote-scraper/pkg/config"
	"quote-scraper/pkg/export"
	"quote-scraper/pkg/extract"
	"quote-scraper/pkg/fetch"
	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

// Crawler orchestrates a full crawl: it walks listing pages in order,
// extracts quotes, resolves authors as they are first seen, and writes the
// output files once the walk completes.
type Crawler struct {
	cfg     *config.Config
	log     *logrus.Entry
	runID   string
	baseURL *url.URL

	fetcher   *fetch.Fetcher
	extractor *extract.QuoteExtractor
	cache     *authors.Cache
	resolver  *authors.Resolver
	writer    *export.CSVWriter
}

// New creates a Crawler from validated configuration and wires its
// components. ctx covers construction-time work such as the robots.txt
// fetch when the gate is enabled.
func New(ctx context.Context, cfg *config.Config, baseLogger *logrus.Logger) (*Crawler, error) {
	baseURL, err := utils.ParseBaseURL(cfg.Site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL '%s': %w", cfg.Site.BaseURL, err)
	}

	runID := uuid.NewString()
	logger := baseLogger.WithField("run_id", runID)

	client := fetch.NewClient(cfg.HTTP, baseLogger)

	var gate *fetch.RobotsGate
	if cfg.HTTP.RespectRobotsTxt {
		gate = fetch.NewRobotsGate(ctx, client, baseURL, cfg.HTTP.UserAgent, logger)
	}

	fetcher := fetch.NewFetcher(client, cfg.HTTP.UserAgent, gate, baseLogger)

	cache := authors.NewCache()
	resolver := authors.NewResolver(cache, fetcher, baseURL, extract.AuthorPageSchema(cfg.Selectors.AuthorPage), logger)

	return &Crawler{
		cfg:       cfg,
		log:       logger,
		runID:     runID,
		baseURL:   baseURL,
		fetcher:   fetcher,
		extractor: extract.NewQuoteExtractor(cfg.Selectors.Listing, resolver, logger),
		cache:     cache,
		resolver:  resolver,
		writer:    export.NewCSVWriter(logger),
	}, nil
}

// RunID returns the unique identifier assigned to this crawl.
func (c *Crawler) RunID() string {
	return c.runID
}

// Run executes the crawl and blocks until it finishes, fails, or ctx is
// cancelled. Each page is fetched and fully extracted before the next is
// requested. Output files are written only after the whole walk succeeds,
// so a failed crawl leaves no fresh output behind. On success the returned
// CrawlResult describes everything the crawl produced.
func (c *Crawler) Run(ctx context.Context) (*models.CrawlResult, error) {
	result := &models.CrawlResult{
		RunID:      c.runID,
		BaseURL:    c.baseURL.String(),
		StartTime:  time.Now(),
		QuotesPath: c.cfg.Output.QuotesPath,
		// The authors file name is fixed and not configurable; it resolves
		// against the working directory.
		AuthorsPath: export.AuthorsFileName,
	}

	c.log.WithField("base_url", result.BaseURL).Info("Crawl starting...")

	// The walk follows next-page markers until a page carries none. There is
	// no page cap: termination trusts the site's own pagination to end.
	var quotes []models.Quote
	pageNum := 1
	for {
		pageURL, err := c.pageURL(pageNum)
		if err != nil {
			return nil, err
		}

		pageLog := c.log.WithFields(logrus.Fields{"page": pageNum, "url": pageURL})
		pageLog.Info("Fetching listing page...")

		body, err := c.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", pageNum, err)
		}

		page, err := c.extractor.ExtractPage(ctx, body)
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", pageNum, err)
		}

		quotes = append(quotes, page.Quotes...)
		result.PagesDone = pageNum
		pageLog.WithFields(logrus.Fields{"quotes": len(page.Quotes), "total": len(quotes)}).Info("Listing page done")

		if !page.HasNext {
			break
		}
		pageNum++
	}

	result.QuoteCount = len(quotes)
	result.AuthorCount = c.cache.Len()
	result.CacheHits = c.resolver.CacheHits()

	if err := c.writer.WriteQuotes(result.QuotesPath, quotes); err != nil {
		return nil, err
	}
	if err := c.writer.WriteAuthors(result.AuthorsPath, c.cache.Authors()); err != nil {
		return nil, err
	}

	result.EndTime = time.Now()

	if c.cfg.Output.SummaryPath != "" {
		result.SummaryPath = c.cfg.Output.SummaryPath
		if err := export.WriteSummary(result.SummaryPath, result, c.log); err != nil {
			return nil, err
		}
	}

	summaryLog := c.log.WithField("base_url", result.BaseURL)
	summaryLog.Info("========================================================================")
	summaryLog.Info("CRAWL FINISHED")
	summaryLog.Infof("Duration:    %v", result.Duration())
	summaryLog.Infof("Final Stats: Pages: %d, Quotes: %d, Authors: %d, Cache Hits: %d",
		result.PagesDone, result.QuoteCount, result.AuthorCount, result.CacheHits)
	summaryLog.Info("========================================================================")

	return result, nil
}

// pageURL returns the listing URL for a 1-based page number. The first page
// is the base URL itself; later pages resolve the configured page path
// against it.
func (c *Crawler) pageURL(page int) (string, error) {
	if page == 1 {
		return c.baseURL.String(), nil
	}
	ref := fmt.Sprintf(c.cfg.Site.PagePathTemplate, page)
	resolved, err := utils.ResolveRef(c.baseURL, ref)
	if err != nil {
		return "", fmt.Errorf("building URL for page %d: %w", page, err)
	}
	return resolved.String(), nil
}
