package extract

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-scraper/pkg/config"
	"quote-scraper/pkg/utils"
)

type resolveCall struct {
	name string
	href string
}

// recordingResolver records Resolve calls and returns a fixed error.
type recordingResolver struct {
	calls []resolveCall
	err   error
}

func (r *recordingResolver) Resolve(_ context.Context, name, href string) error {
	r.calls = append(r.calls, resolveCall{name: name, href: href})
	return r.err
}

func testExtractor(resolver AuthorResolver) *QuoteExtractor {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewQuoteExtractor(config.DefaultSelectors().Listing, resolver, logrus.NewEntry(log))
}

const listingPage = `<html><body>
<div class="quote">
	<span class="text">“The world as we have created it is a process of our thinking.”</span>
	<span>by <small class="author">Albert Einstein</small>
	<a href="/author/Albert-Einstein">(about)</a>
	</span>
	<div class="tags">
		Tags:
		<a class="tag" href="/tag/change/">change</a>
		<a class="tag" href="/tag/thinking/">thinking</a>
	</div>
</div>
<div class="quote">
	<span class="text">“The person, be it gentleman or lady, who has not pleasure in a good novel, must be intolerably stupid.”</span>
	<span>by <small class="author">Jane Austen</small>
	<a href="/author/Jane-Austen">(about)</a>
	</span>
	<div class="tags">
		Tags:
		<a class="tag" href="/tag/books/">books</a>
	</div>
</div>
<nav><ul class="pager"><li class="next"><a href="/page/2/">Next</a></li></ul></nav>
</body></html>`

const lastListingPage = `<html><body>
<div class="quote">
	<span class="text">“A day without sunshine is like, you know, night.”</span>
	<span>by <small class="author">Steve Martin</small>
	<a href="/author/Steve-Martin">(about)</a>
	</span>
	<div class="tags">
		Tags:
		<a class="tag" href="/tag/humor/">humor</a>
		<a class="tag" href="/tag/obvious/">obvious</a>
		<a class="tag" href="/tag/humor/">humor</a>
	</div>
</div>
</body></html>`

func TestExtractPage_ParsesQuotes(t *testing.T) {
	extractor := testExtractor(&recordingResolver{})

	result, err := extractor.ExtractPage(context.Background(), []byte(listingPage))
	require.NoError(t, err)
	require.Len(t, result.Quotes, 2)

	first := result.Quotes[0]
	assert.Equal(t, "“The world as we have created it is a process of our thinking.”", first.Text)
	assert.Equal(t, "Albert Einstein", first.Author)
	assert.Equal(t, []string{"change", "thinking"}, first.Tags)

	second := result.Quotes[1]
	assert.Equal(t, "Jane Austen", second.Author)
	assert.Equal(t, []string{"books"}, second.Tags)

	assert.True(t, result.HasNext)
}

func TestExtractPage_NoNextMarker(t *testing.T) {
	extractor := testExtractor(&recordingResolver{})

	result, err := extractor.ExtractPage(context.Background(), []byte(lastListingPage))
	require.NoError(t, err)

	assert.False(t, result.HasNext)
}

func TestExtractPage_ResolverCalledPerQuote(t *testing.T) {
	resolver := &recordingResolver{}
	extractor := testExtractor(resolver)

	_, err := extractor.ExtractPage(context.Background(), []byte(listingPage))
	require.NoError(t, err)

	assert.Equal(t, []resolveCall{
		{name: "Albert Einstein", href: "/author/Albert-Einstein"},
		{name: "Jane Austen", href: "/author/Jane-Austen"},
	}, resolver.calls)
}

func TestExtractPage_NoQuoteContainers(t *testing.T) {
	resolver := &recordingResolver{}
	extractor := testExtractor(resolver)

	result, err := extractor.ExtractPage(context.Background(), []byte(`<html><body><p>Nothing here</p></body></html>`))
	require.NoError(t, err)

	assert.Empty(t, result.Quotes)
	assert.False(t, result.HasNext)
	assert.Empty(t, resolver.calls)
}

func TestExtractPage_TagDuplicatesKept(t *testing.T) {
	extractor := testExtractor(&recordingResolver{})

	result, err := extractor.ExtractPage(context.Background(), []byte(lastListingPage))
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)

	assert.Equal(t, []string{"humor", "obvious", "humor"}, result.Quotes[0].Tags)
}

func TestExtractPage_QuoteWithoutTags(t *testing.T) {
	page := `<html><body>
	<div class="quote">
		<span class="text">“Untagged.”</span>
		<span><small class="author">Anonymous</small>
		<a href="/author/Anonymous">(about)</a></span>
	</div>
	</body></html>`

	extractor := testExtractor(&recordingResolver{})

	result, err := extractor.ExtractPage(context.Background(), []byte(page))
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)

	assert.Empty(t, result.Quotes[0].Tags)
}

func TestExtractPage_MissingTextAborts(t *testing.T) {
	page := `<html><body>
	<div class="quote">
		<span><small class="author">Albert Einstein</small>
		<a href="/author/Albert-Einstein">(about)</a></span>
	</div>
	</body></html>`

	resolver := &recordingResolver{}
	extractor := testExtractor(resolver)

	result, err := extractor.ExtractPage(context.Background(), []byte(page))

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrExtraction))
	assert.Contains(t, err.Error(), "field 'text'")
	assert.Nil(t, result)
	assert.Empty(t, resolver.calls)
}

func TestExtractPage_MissingAuthorLinkAborts(t *testing.T) {
	page := `<html><body>
	<div class="quote">
		<span class="text">“No link.”</span>
		<span><small class="author">Albert Einstein</small></span>
	</div>
	</body></html>`

	extractor := testExtractor(&recordingResolver{})

	result, err := extractor.ExtractPage(context.Background(), []byte(page))

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrExtraction))
	assert.Nil(t, result)
}

func TestExtractPage_ResolverFailureAborts(t *testing.T) {
	resolver := &recordingResolver{err: errors.New("author page unreachable")}
	extractor := testExtractor(resolver)

	result, err := extractor.ExtractPage(context.Background(), []byte(listingPage))

	require.Error(t, err)
	assert.True(t, errors.Is(err, resolver.err))
	assert.Contains(t, err.Error(), "resolving author 'Albert Einstein'")
	assert.Nil(t, result)
	// The failing quote stops the page; the second quote is never reached
	assert.Len(t, resolver.calls, 1)
}
