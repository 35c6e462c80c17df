package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML extracts plain text from a scraped article body. Scrapers store
// some bodies as raw HTML fragments; anything else passes through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Text()
	return strings.Join(strings.Fields(text), " ")
}
