package models

import "time"

// Quote is one quotation extracted from a listing page. Created once per
// quote container, in document order, and immutable afterwards.
type Quote struct {
	Text   string   // Quotation text as displayed, surrounding quote marks included
	Author string   // Author display name; join key into the author set
	Tags   []string // Tag labels in document order, duplicates preserved
}

// Author holds the biographical fields extracted from an author profile page.
// At most one Author exists per distinct display name.
type Author struct {
	Name         string // Name as displayed on the profile page
	BornDate     string
	BornLocation string
	Description  string
}

// CrawlResult summarizes a single completed crawl run. It feeds the final
// log line and the optional summary report; it is not part of the CSV data.
type CrawlResult struct {
	RunID       string
	BaseURL     string
	StartTime   time.Time
	EndTime     time.Time
	PagesDone   int // Listing pages fetched and extracted
	QuoteCount  int
	AuthorCount int
	CacheHits   int // Author lookups served from the cache without a fetch
	QuotesPath  string
	AuthorsPath string
	SummaryPath string // Empty when no summary report was written
}

// Duration returns the wall-clock duration of the crawl.
func (r *CrawlResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
