package config

import "time"

// Defaults target the public quotes.toscrape.com dataset; every field can be
// overridden via the YAML config file, so the binary runs with no config at all.
const (
	DefaultBaseURL          = "https://quotes.toscrape.com/"
	DefaultPagePathTemplate = "page/%d/"
	DefaultUserAgent        = "quote-scraper/1.0"
	DefaultQuotesPath       = "quotes.csv"
	DefaultLogFile          = "crawl.log"
	DefaultLogLevel         = "info"
)

// Config is the root configuration for a crawl run.
type Config struct {
	Site      SiteConfig       `yaml:"site,omitempty"`
	HTTP      HTTPClientConfig `yaml:"http,omitempty"`
	Selectors SelectorsConfig  `yaml:"selectors,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty"`
	Log       LogConfig        `yaml:"log,omitempty"`
}

// SiteConfig identifies the crawl target: where the listing pages live and
// how pages after the first are addressed.
type SiteConfig struct {
	BaseURL          string `yaml:"base_url"`
	PagePathTemplate string `yaml:"page_path_template,omitempty"` // Sprintf template with one %d, resolved against base_url for pages >= 2
}

// SelectorsConfig is the extraction schema: CSS selectors for every field the
// pipeline reads. Locator changes stay here, isolated from pipeline logic.
type SelectorsConfig struct {
	Listing    ListingSelectors `yaml:"listing,omitempty"`
	AuthorPage AuthorSelectors  `yaml:"author_page,omitempty"`
}

// ListingSelectors locate the quote fields on a listing page.
type ListingSelectors struct {
	Quote      string `yaml:"quote,omitempty"`       // Quote container node
	Text       string `yaml:"text,omitempty"`        // Quotation text within a container
	Author     string `yaml:"author,omitempty"`      // Author display name within a container
	AuthorLink string `yaml:"author_link,omitempty"` // Anchor within a container whose href is the author profile reference
	Tag        string `yaml:"tag,omitempty"`         // Tag labels within a container (all matches, document order)
	NextPage   string `yaml:"next_page,omitempty"`   // Next-page indicator anywhere on the page
}

// AuthorSelectors locate the biographical fields on an author profile page.
type AuthorSelectors struct {
	Name         string `yaml:"name,omitempty"`
	BornDate     string `yaml:"born_date,omitempty"`
	BornLocation string `yaml:"born_location,omitempty"`
	Description  string `yaml:"description,omitempty"`
}

// HTTPClientConfig holds settings for the shared HTTP client.
type HTTPClientConfig struct {
	UserAgent             string        `yaml:"user_agent,omitempty"`
	RespectRobotsTxt      bool          `yaml:"respect_robots_txt,omitempty"`      // Gate fetches on the site's robots.txt (off by default)
	Timeout               time.Duration `yaml:"timeout,omitempty"`                 // Overall request timeout
	MaxIdleConns          int           `yaml:"max_idle_conns,omitempty"`          // Max total idle connections
	MaxIdleConnsPerHost   int           `yaml:"max_idle_conns_per_host,omitempty"` // Max idle connections per host
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout,omitempty"`       // Timeout for idle connections
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout,omitempty"`   // Timeout for TLS handshake
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout,omitempty"` // Timeout for 100-continue
	ForceAttemptHTTP2     *bool         `yaml:"force_attempt_http2,omitempty"`     // Explicitly enable/disable HTTP/2 attempt (use pointer for tri-state: nil=default, true=force, false=disable)
	DialerTimeout         time.Duration `yaml:"dialer_timeout,omitempty"`          // Connection dial timeout
	DialerKeepAlive       time.Duration `yaml:"dialer_keep_alive,omitempty"`       // TCP keep-alive interval
}

// OutputConfig controls where the crawl datasets land. The authors file is
// deliberately absent: its name is fixed (author.csv in the working
// directory) and not configurable.
type OutputConfig struct {
	QuotesPath  string `yaml:"quotes_path,omitempty"`
	SummaryPath string `yaml:"summary_path,omitempty"` // Markdown crawl summary; empty disables it
}

// LogConfig controls the logger. Events always go to stdout; File names the
// file copy of the stream.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// DefaultSelectors returns the canonical quotes.toscrape.com extraction schema.
func DefaultSelectors() SelectorsConfig {
	return SelectorsConfig{
		Listing: ListingSelectors{
			Quote:      ".quote",
			Text:       ".text",
			Author:     ".author",
			AuthorLink: "a",
			Tag:        ".tag",
			NextPage:   ".next",
		},
		AuthorPage: AuthorSelectors{
			Name:         ".author-title",
			BornDate:     ".author-born-date",
			BornLocation: ".author-born-location",
			Description:  ".author-description",
		},
	}
}

// DefaultConfig returns a fully-populated configuration for the default
// target site. Used when no config file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:          DefaultBaseURL,
			PagePathTemplate: DefaultPagePathTemplate,
		},
		HTTP: HTTPClientConfig{
			UserAgent: DefaultUserAgent,
		},
		Selectors: DefaultSelectors(),
		Output: OutputConfig{
			QuotesPath: DefaultQuotesPath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}
