package authors

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/extract"
	"quote-scraper/pkg/fetch"
	"quote-scraper/pkg/utils"
)

// Resolver fetches and caches author detail pages. Each distinct author name
// is fetched at most once per crawl; repeat sightings are served from the
// cache.
type Resolver struct {
	cache     *Cache
	fetcher   *fetch.Fetcher
	baseURL   *url.URL
	schema    []extract.Field
	log       *logrus.Entry
	cacheHits int
}

// NewResolver creates a Resolver that resolves author links against baseURL
// and extracts detail pages with the given field schema.
func NewResolver(cache *Cache, fetcher *fetch.Fetcher, baseURL *url.URL, schema []extract.Field, log *logrus.Entry) *Resolver {
	return &Resolver{
		cache:   cache,
		fetcher: fetcher,
		baseURL: baseURL,
		schema:  schema,
		log:     log,
	}
}

// Resolve ensures the named author is cached, fetching and extracting the
// author's detail page on first sight. authorHref is the link target from
// the listing page, resolved against the crawl base URL. Any fetch or
// extraction failure leaves the cache unchanged.
func (r *Resolver) Resolve(ctx context.Context, name, authorHref string) error {
	if _, ok := r.cache.Get(name); ok {
		r.cacheHits++
		r.log.WithFields(logrus.Fields{"author": name, "cache_hits": r.cacheHits}).Info("Author cache hit")
		return nil
	}

	authorURL, err := utils.ResolveRef(r.baseURL, authorHref)
	if err != nil {
		return fmt.Errorf("resolving author URL '%s': %w", authorHref, err)
	}

	authorLog := r.log.WithFields(logrus.Fields{"author": name, "url": authorURL.String()})
	authorLog.Info("Fetching author page...")

	body, err := r.fetcher.Fetch(ctx, authorURL.String())
	if err != nil {
		return err
	}

	author, err := extract.ExtractAuthor(body, r.schema)
	if err != nil {
		return fmt.Errorf("author page '%s': %w", authorURL.String(), err)
	}

	// Keyed by the listing-page name, not the detail-page title: the cache
	// must answer for the exact name the next listing sighting will carry.
	r.cache.Set(name, author)
	authorLog.Debug("Author resolved and cached")
	return nil
}

// CacheHits returns how many sightings were served from the cache.
func (r *Resolver) CacheHits() int {
	return r.cacheHits
}
