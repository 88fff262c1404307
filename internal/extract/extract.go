// Package extract pulls hyperlink targets out of an HTML document.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Links returns every href target from a and area elements, in document
// order, duplicates preserved. Malformed HTML is parsed best-effort and
// never causes an error; a document with no links yields an empty slice.
func Links(document string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href], area[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, href)
	})
	return links
}
