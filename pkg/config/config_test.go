package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestDefaultConfig_PassesValidationCleanly(t *testing.T) {
	cfg := DefaultConfig()

	warnings, err := cfg.Validate()

	require.NoError(t, err)
	assert.Empty(t, warnings, "the built-in default config should never warn")
	assert.Equal(t, DefaultBaseURL, cfg.Site.BaseURL)
	assert.Equal(t, DefaultQuotesPath, cfg.Output.QuotesPath)
}

func TestConfig_YAMLUnmarshal(t *testing.T) {
	raw := `
site:
  base_url: http://localhost:9999/
  page_path_template: "p/%d/"
http:
  user_agent: test-agent/0.1
  respect_robots_txt: true
  force_attempt_http2: false
selectors:
  listing:
    quote: article.quote
    text: span.body
  author_page:
    name: h1.name
output:
  quotes_path: data/quotes.csv
  summary_path: data/summary.md
log:
  level: debug
  file: test.log
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, "http://localhost:9999/", cfg.Site.BaseURL)
	assert.Equal(t, "p/%d/", cfg.Site.PagePathTemplate)
	assert.Equal(t, "test-agent/0.1", cfg.HTTP.UserAgent)
	assert.True(t, cfg.HTTP.RespectRobotsTxt)
	assert.Equal(t, boolPtr(false), cfg.HTTP.ForceAttemptHTTP2)
	assert.Equal(t, "article.quote", cfg.Selectors.Listing.Quote)
	assert.Equal(t, "span.body", cfg.Selectors.Listing.Text)
	assert.Equal(t, "h1.name", cfg.Selectors.AuthorPage.Name)
	assert.Equal(t, "data/quotes.csv", cfg.Output.QuotesPath)
	assert.Equal(t, "data/summary.md", cfg.Output.SummaryPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "test.log", cfg.Log.File)

	// Unset sections stay zero until Validate fills them
	assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
	assert.Empty(t, cfg.Selectors.Listing.Author)
}

func TestDefaultSelectors_CanonicalSchema(t *testing.T) {
	sel := DefaultSelectors()

	assert.Equal(t, ".quote", sel.Listing.Quote)
	assert.Equal(t, ".text", sel.Listing.Text)
	assert.Equal(t, ".author", sel.Listing.Author)
	assert.Equal(t, "a", sel.Listing.AuthorLink)
	assert.Equal(t, ".tag", sel.Listing.Tag)
	assert.Equal(t, ".next", sel.Listing.NextPage)
	assert.Equal(t, ".author-title", sel.AuthorPage.Name)
	assert.Equal(t, ".author-born-date", sel.AuthorPage.BornDate)
	assert.Equal(t, ".author-born-location", sel.AuthorPage.BornLocation)
	assert.Equal(t, ".author-description", sel.AuthorPage.Description)
}
