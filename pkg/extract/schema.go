package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"quote-scraper/pkg/utils"
)

// Field pairs an output field name with the CSS selector locating its value.
// Schemas are ordered slices of Field so extraction and error reporting
// follow the declared field order.
type Field struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
}

// extractFields resolves every field of the schema against sel and returns
// the trimmed text of each field's first match, keyed by field name.
//
// A selector that matches no node is an extraction failure: the page does
// not have the expected shape and the caller must not emit a partial record.
// A matched node whose text is empty is a legitimate empty value.
func extractFields(sel *goquery.Selection, fields []Field) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		match := sel.Find(field.Selector)
		if match.Length() == 0 {
			return nil, fmt.Errorf("%w: field '%s' (selector '%s')", utils.ErrExtraction, field.Name, field.Selector)
		}
		values[field.Name] = strings.TrimSpace(match.First().Text())
	}
	return values, nil
}
