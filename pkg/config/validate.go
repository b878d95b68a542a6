package config

import (
	"fmt"
	"strings"
	"time"

	"quote-scraper/pkg/utils"
)

// Validate checks Config fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *Config) Validate() (warnings []string, err error) {
	// Site
	if c.Site.BaseURL == "" {
		warnings = append(warnings, fmt.Sprintf("site.base_url is empty, defaulting to '%s'", DefaultBaseURL))
		c.Site.BaseURL = DefaultBaseURL
	}
	if _, parseErr := utils.ParseBaseURL(c.Site.BaseURL); parseErr != nil {
		return warnings, fmt.Errorf("%w: site.base_url: %v", utils.ErrConfigValidation, parseErr)
	}
	if c.Site.PagePathTemplate == "" {
		c.Site.PagePathTemplate = DefaultPagePathTemplate
	}
	if !strings.Contains(c.Site.PagePathTemplate, "%d") {
		return warnings, fmt.Errorf("%w: site.page_path_template '%s' must contain a %%d placeholder",
			utils.ErrConfigValidation, c.Site.PagePathTemplate)
	}

	// Selectors
	warnings = append(warnings, c.validateSelectors()...)

	// HTTP client settings
	c.validateHTTPClientSettings()

	// Output
	if c.Output.QuotesPath == "" {
		warnings = append(warnings, fmt.Sprintf("output.quotes_path is empty, defaulting to '%s'", DefaultQuotesPath))
		c.Output.QuotesPath = DefaultQuotesPath
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}

	return warnings, nil
}

// validateSelectors fills any empty selector with its canonical default.
// An explicitly-configured selector is never touched.
func (c *Config) validateSelectors() (warnings []string) {
	defaults := DefaultSelectors()

	fill := func(target *string, def, key string) {
		if *target == "" {
			warnings = append(warnings, fmt.Sprintf("selectors.%s is empty, defaulting to '%s'", key, def))
			*target = def
		}
	}

	fill(&c.Selectors.Listing.Quote, defaults.Listing.Quote, "listing.quote")
	fill(&c.Selectors.Listing.Text, defaults.Listing.Text, "listing.text")
	fill(&c.Selectors.Listing.Author, defaults.Listing.Author, "listing.author")
	fill(&c.Selectors.Listing.AuthorLink, defaults.Listing.AuthorLink, "listing.author_link")
	fill(&c.Selectors.Listing.Tag, defaults.Listing.Tag, "listing.tag")
	fill(&c.Selectors.Listing.NextPage, defaults.Listing.NextPage, "listing.next_page")
	fill(&c.Selectors.AuthorPage.Name, defaults.AuthorPage.Name, "author_page.name")
	fill(&c.Selectors.AuthorPage.BornDate, defaults.AuthorPage.BornDate, "author_page.born_date")
	fill(&c.Selectors.AuthorPage.BornLocation, defaults.AuthorPage.BornLocation, "author_page.born_location")
	fill(&c.Selectors.AuthorPage.Description, defaults.AuthorPage.Description, "author_page.description")

	return warnings
}

// validateHTTPClientSettings applies defaults to HTTP client settings.
func (c *Config) validateHTTPClientSettings() {
	h := &c.HTTP
	if h.UserAgent == "" {
		h.UserAgent = DefaultUserAgent
	}
	if h.Timeout <= 0 {
		h.Timeout = 30 * time.Second
	}
	if h.MaxIdleConns <= 0 {
		h.MaxIdleConns = 100
	}
	if h.MaxIdleConnsPerHost <= 0 {
		h.MaxIdleConnsPerHost = 2
	}
	if h.IdleConnTimeout <= 0 {
		h.IdleConnTimeout = 90 * time.Second
	}
	if h.TLSHandshakeTimeout <= 0 {
		h.TLSHandshakeTimeout = 10 * time.Second
	}
	if h.ExpectContinueTimeout <= 0 {
		h.ExpectContinueTimeout = 1 * time.Second
	}
	if h.DialerTimeout <= 0 {
		h.DialerTimeout = 15 * time.Second
	}
	if h.DialerKeepAlive <= 0 {
		h.DialerKeepAlive = 30 * time.Second
	}
}
