package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
)

// RobotsGate checks URLs against the crawl host's robots.txt rules. The
// rules are fetched once at construction; the crawl stays on one host, so
// there is no per-host cache to maintain.
type RobotsGate struct {
	userAgent string
	data      *robotstxt.RobotsData // nil means allow-all
	log       *logrus.Entry
}

// NewRobotsGate fetches and parses robots.txt for the base URL's host.
// If robots.txt cannot be fetched, read, or parsed, the gate allows every
// URL: politeness must not turn an absent robots.txt into a failed crawl.
func NewRobotsGate(ctx context.Context, client *http.Client, base *url.URL, userAgent string, log *logrus.Entry) *RobotsGate {
	gate := &RobotsGate{userAgent: userAgent, log: log}

	robotsURL := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/robots.txt"}
	robotsLog := log.WithField("robots_url", robotsURL.String())
	robotsLog.Info("Fetching robots.txt...")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		robotsLog.Errorf("Error creating robots.txt request: %v", err)
		return gate
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		robotsLog.Warnf("Fetching robots.txt failed, allowing all URLs: %v", err)
		return gate
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		robotsLog.Warnf("Reading robots.txt failed, allowing all URLs: %v", err)
		return gate
	}

	// FromStatusAndBytes applies the conventional status semantics:
	// any 4xx means no rules (allow all), 5xx means disallow all.
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		robotsLog.Warnf("Parsing robots.txt failed, allowing all URLs: %v", err)
		return gate
	}

	robotsLog.Info("Successfully fetched and parsed robots.txt")
	gate.data = data
	return gate
}

// Allowed reports whether the configured user agent may fetch target.
// A gate with no rules allows everything.
func (g *RobotsGate) Allowed(target *url.URL) bool {
	if g == nil || g.data == nil {
		return true
	}
	return g.data.TestAgent(target.RequestURI(), g.userAgent)
}
