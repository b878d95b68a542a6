package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

func testCrawlResult() *models.CrawlResult {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &models.CrawlResult{
		RunID:       "2f3c9a1e-8a6b-4f2d-9c3e-1a2b3c4d5e6f",
		BaseURL:     "https://quotes.toscrape.com/",
		StartTime:   start,
		EndTime:     start.Add(42 * time.Second),
		PagesDone:   10,
		QuoteCount:  100,
		AuthorCount: 50,
		CacheHits:   50,
		QuotesPath:  "quotes.csv",
		AuthorsPath: "author.csv",
	}
}

func TestWriteSummary_Content(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	require.NoError(t, WriteSummary(path, testCrawlResult(), testLogEntry()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Crawl Summary")
	assert.Contains(t, content, "2f3c9a1e-8a6b-4f2d-9c3e-1a2b3c4d5e6f")
	assert.Contains(t, content, "https://quotes.toscrape.com/")
	assert.Contains(t, content, "100")
	assert.Contains(t, content, "Output Files")
	assert.Contains(t, content, "quotes.csv")
	assert.Contains(t, content, "author.csv")
}

func TestWriteSummary_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	require.NoError(t, WriteSummary(path, testCrawlResult(), testLogEntry()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
}

func TestWriteSummary_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "summary.md")

	err := WriteSummary(path, testCrawlResult(), testLogEntry())

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrOutputIO))
}
