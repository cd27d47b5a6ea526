// Package html pulls the little a minimal browser needs out of a page:
// its title and its <a href> links.
package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

type Link struct {
	Text string
	Href string
}

type Page struct {
	Title string
	Links []Link
}

// Summarize parses body leniently; any text is accepted as HTML.
// Anchors without a usable href are skipped.
func Summarize(body string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return Page{}, errors.Wrap(err, "parsing html")
	}

	page := Page{
		Title: collapseSpace(doc.Find("title").First().Text()),
		Links: make([]Link, 0),
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		page.Links = append(page.Links, Link{
			Text: collapseSpace(sel.Text()),
			Href: href,
		})
	})

	return page, nil
}

// Hrefs returns the href of every link on p, in document order.
func (p Page) Hrefs() []string {
	hrefs := make([]string, 0, len(p.Links))
	for _, link := range p.Links {
		hrefs = append(hrefs, link.Href)
	}
	return hrefs
}

func collapseSpace(s string) string { return strings.Join(strings.Fields(s), " ") }
