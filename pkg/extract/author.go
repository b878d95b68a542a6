package extract

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"quote-scraper/pkg/config"
	"quote-scraper/pkg/models"
	"quote-scraper/pkg/utils"
)

// AuthorPageSchema builds the author-page field schema from configured
// selectors. The field order matches the author CSV column order.
func AuthorPageSchema(sel config.AuthorSelectors) []Field {
	return []Field{
		{Name: "name", Selector: sel.Name},
		{Name: "born_date", Selector: sel.BornDate},
		{Name: "born_location", Selector: sel.BornLocation},
		{Name: "description", Selector: sel.Description},
	}
}

// ExtractAuthor parses an author detail page into an Author record. The
// schema must carry the four fields produced by AuthorPageSchema; any field
// whose selector finds no node fails the whole page.
func ExtractAuthor(body []byte, fields []Field) (models.Author, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return models.Author{}, fmt.Errorf("%w: parsing author page HTML: %v", utils.ErrExtraction, err)
	}

	values, err := extractFields(doc.Selection, fields)
	if err != nil {
		return models.Author{}, err
	}

	return models.Author{
		Name:         values["name"],
		BornDate:     values["born_date"],
		BornLocation: values["born_location"],
		Description:  values["description"],
	}, nil
}
