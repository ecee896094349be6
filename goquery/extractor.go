// Package goquery provides a CSS-selector based harvest.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/harvest"
)

// nonRendered matches elements whose text is never shown to a reader.
const nonRendered = "script, style, noscript"

// regionSeparator joins the text of separate content regions.
const regionSeparator = "\n\n"

// Ensure Extractor implements harvest.Extractor at compile time.
var _ harvest.Extractor = (*Extractor)(nil)

// Extractor extracts text from known content regions of a page, falling back
// to the whole body when none of the regions are present.
type Extractor struct {
	selector string
}

// NewExtractor creates an Extractor matching the given content-region
// selectors. With no selectors, harvest.DefaultSelectors is used.
func NewExtractor(selectors ...string) *Extractor {
	if len(selectors) == 0 {
		selectors = harvest.DefaultSelectors()
	}
	return &Extractor{selector: strings.Join(selectors, ", ")}
}

// Extract returns the flattened text of every matching content region in
// document order, joined by a blank line. Regions nested inside other
// regions are included again on their own. Without a match, the body text
// is returned, or an empty string if the page has no body.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", harvest.Errorf(harvest.EINVALID, "failed to parse HTML: %v", err)
	}

	regions := doc.Find(e.selector)
	if regions.Length() > 0 {
		texts := make([]string, 0, regions.Length())
		regions.Each(func(_ int, sel *goquery.Selection) {
			sel.Find(nonRendered).Remove()
			texts = append(texts, FlattenText(sel))
		})
		return strings.Join(texts, regionSeparator), nil
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", nil
	}
	body.Find(nonRendered).Remove()
	return FlattenText(body), nil
}
