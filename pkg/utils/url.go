package utils

import (
	"fmt"
	"net/url"
)

// ResolveRef resolves a possibly-relative reference against base, mirroring
// how a browser resolves an href found in a page served from base.
// Does not modify base.
func ResolveRef(base *url.URL, ref string) (*url.URL, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing reference %q: %w", ref, err)
	}
	return base.ResolveReference(parsed), nil
}

// ParseBaseURL parses and sanity-checks a crawl base URL. The URL must be
// absolute with an http or https scheme and a host; a missing path is
// normalized to "/" so relative references resolve predictably.
func ParseBaseURL(raw string) (*url.URL, error) {
	parsed, err := url.ParseRequestURI(raw) // Stricter parsing, requires scheme
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q has unsupported scheme %q", raw, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", raw)
	}
	if parsed.Path == "" {
		parsed.Path = "/"
	}
	return parsed, nil
}
