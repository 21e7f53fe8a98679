// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package htmlconv

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/formatacle/formatacle/internal/classify"
)

// Paragraphs reads the top-level <p> elements of an HTML fragment and
// returns their inner markup in document order. A paragraph with no text
// and no line breaks is tagged with the empty-paragraph sentinel, matching
// what a sentinel-configured converter would emit.
func Paragraphs(htmlFragment string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlFragment))
	if err != nil {
		return nil, fmt.Errorf("parsing converted HTML: %w", err)
	}

	var paragraphs []string
	var iterErr error
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			iterErr = fmt.Errorf("reading paragraph markup: %w", err)
			return
		}
		if strings.TrimSpace(s.Text()) == "" && s.Find("br").Length() == 0 {
			inner = classify.EmptySentinel
		}
		paragraphs = append(paragraphs, inner)
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return paragraphs, nil
}
