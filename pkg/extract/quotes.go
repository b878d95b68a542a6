package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"quote-scraper/pkg/config"
	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

// AuthorResolver resolves the author named on a listing page, fetching the
// author's detail page when the name has not been seen before. Resolve is
// called synchronously while the listing page is being extracted, so by the
// time a page's quotes are returned every referenced author is resolved.
type AuthorResolver interface {
	Resolve(ctx context.Context, name, authorHref string) error
}

// PageResult holds everything extracted from a single listing page.
type PageResult struct {
	Quotes  []models.Quote
	HasNext bool // A next-page marker was present on the page
}

// QuoteExtractor parses listing pages into quote records using configured
// selectors. Each quote's author is resolved before the quote is accepted;
// any malformed quote container aborts the whole page.
type QuoteExtractor struct {
	selectors config.ListingSelectors
	resolver  AuthorResolver
	log       *logrus.Entry
}

// NewQuoteExtractor creates a QuoteExtractor. resolver must not be nil.
func NewQuoteExtractor(selectors config.ListingSelectors, resolver AuthorResolver, log *logrus.Entry) *QuoteExtractor {
	return &QuoteExtractor{
		selectors: selectors,
		resolver:  resolver,
		log:       log,
	}
}

// ExtractPage parses one listing page body. It returns the page's quotes in
// document order and whether a next-page marker exists. A page with zero
// quote containers is valid and yields an empty result.
func (e *QuoteExtractor) ExtractPage(ctx context.Context, body []byte) (*PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing listing page HTML: %v", utils.ErrExtraction, err)
	}

	result := &PageResult{}

	var quoteErr error
	doc.Find(e.selectors.Quote).EachWithBreak(func(i int, container *goquery.Selection) bool {
		quote, err := e.extractQuote(ctx, i, container)
		if err != nil {
			quoteErr = err
			return false
		}
		result.Quotes = append(result.Quotes, quote)
		return true
	})
	if quoteErr != nil {
		return nil, quoteErr
	}

	result.HasNext = doc.Find(e.selectors.NextPage).Length() > 0

	e.log.WithFields(logrus.Fields{
		"quotes":   len(result.Quotes),
		"has_next": result.HasNext,
	}).Debug("Extracted listing page")

	return result, nil
}

// extractQuote pulls one quote out of its container and resolves its author.
// index is the container's position on the page, used only for error context.
func (e *QuoteExtractor) extractQuote(ctx context.Context, index int, container *goquery.Selection) (models.Quote, error) {
	values, err := extractFields(container, []Field{
		{Name: "text", Selector: e.selectors.Text},
		{Name: "author", Selector: e.selectors.Author},
	})
	if err != nil {
		return models.Quote{}, fmt.Errorf("quote %d: %w", index, err)
	}

	link := container.Find(e.selectors.AuthorLink).First()
	if link.Length() == 0 {
		return models.Quote{}, fmt.Errorf("%w: quote %d: author link (selector '%s') not found", utils.ErrExtraction, index, e.selectors.AuthorLink)
	}
	href, exists := link.Attr("href")
	if !exists || href == "" {
		return models.Quote{}, fmt.Errorf("%w: quote %d: author link has no href", utils.ErrExtraction, index)
	}

	// All tag matches in document order; duplicates are kept as-is.
	var tags []string
	container.Find(e.selectors.Tag).Each(func(_ int, tag *goquery.Selection) {
		tags = append(tags, strings.TrimSpace(tag.Text()))
	})

	name := values["author"]
	if err := e.resolver.Resolve(ctx, name, href); err != nil {
		return models.Quote{}, fmt.Errorf("quote %d: resolving author '%s': %w", index, name, err)
	}

	return models.Quote{
		Text:   values["text"],
		Author: name,
		Tags:   tags,
	}, nil
}
