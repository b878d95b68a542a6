package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/utils"
)

// Fetcher performs single-attempt GET requests using an underlying http.Client.
// Any transport failure or non-2xx status is a failed fetch; there are no
// retries, so a failure surfaces immediately to the caller.
type Fetcher struct {
	client    *http.Client
	userAgent string
	robots    *RobotsGate // nil when the robots gate is disabled
	log       *logrus.Logger
}

// NewFetcher creates a Fetcher. robots may be nil to disable the gate.
func NewFetcher(client *http.Client, userAgent string, robots *RobotsGate, log *logrus.Logger) *Fetcher {
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		robots:    robots,
		log:       log,
	}
}

// Fetch retrieves pageURL and returns the raw response body.
// Failures wrap utils.ErrFetch, or utils.ErrRobotsDisallowed when the gate
// refuses the URL. Context cancellation is returned as-is so the caller can
// distinguish a requested stop from a fetch failure.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	reqLog := f.log.WithField("url", pageURL)

	if f.robots != nil {
		target, err := url.Parse(pageURL)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing URL '%s': %w", utils.ErrFetch, pageURL, err)
		}
		if !f.robots.Allowed(target) {
			reqLog.Warn("URL disallowed by robots.txt")
			return nil, fmt.Errorf("%w: %s", utils.ErrRobotsDisallowed, pageURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request for '%s': %w", utils.ErrFetch, pageURL, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			reqLog.Warnf("Context cancelled during HTTP request: %v", err)
			return nil, err
		}
		reqLog.Errorf("Network error: %v", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrFetch, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	statusCode := resp.StatusCode
	resLog := reqLog.WithFields(logrus.Fields{"status_code": statusCode, "status": resp.Status})

	switch {
	case statusCode >= 200 && statusCode < 300:
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("%w: reading body of '%s': %w", utils.ErrFetch, pageURL, readErr)
		}
		resLog.Debug("Successfully fetched")
		return body, nil

	case statusCode >= 400 && statusCode < 500:
		resLog.Warn("Client error (4xx)")
		return nil, fmt.Errorf("%w: status %d %s for %s", utils.ErrFetch, statusCode, http.StatusText(statusCode), pageURL)

	case statusCode >= 500:
		resLog.Warn("Server error (5xx)")
		return nil, fmt.Errorf("%w: status %d %s for %s", utils.ErrFetch, statusCode, http.StatusText(statusCode), pageURL)

	default:
		// 3xx only reaches here if the redirect cap fired inside client.Do;
		// anything else is a status the pipeline has no business tolerating
		resLog.Warnf("Unexpected status: %d", statusCode)
		return nil, fmt.Errorf("%w: status %d %s for %s", utils.ErrFetch, statusCode, http.StatusText(statusCode), pageURL)
	}
}
