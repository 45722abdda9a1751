package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shrvya4/Glucose-Guardian/internal/websearch"
)

// ReviewSiteStrategy looks for the restaurant's page on a third-party
// review site via web search, then scrapes its menu section by structural
// markers.
type ReviewSiteStrategy struct {
	search websearch.Searcher
	fetch  *Fetcher
}

func NewReviewSiteStrategy(search websearch.Searcher, fetch *Fetcher) *ReviewSiteStrategy {
	return &ReviewSiteStrategy{search: search, fetch: fetch}
}

func (s *ReviewSiteStrategy) Name() string { return "review-site" }

func (s *ReviewSiteStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	query := fmt.Sprintf("%s %s site:yelp.com", req.Name, req.Location())

	results, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	var pageURL string
	for _, r := range results {
		if strings.Contains(r.Link, "yelp.com") {
			pageURL = r.Link
			break
		}
	}
	if pageURL == "" {
		return nil, errors.New("no review-site page found")
	}

	doc, err := s.fetch.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	section := menuSection(doc)
	if section == nil {
		return nil, errors.New("no menu section on review-site page")
	}

	dishes := reviewItems(section)
	if len(dishes) == 0 {
		return nil, errors.New("no menu items in review-site menu section")
	}

	return &Result{
		Dishes: dishes,
		Source: SourceReviewSite,
		URL:    pageURL,
	}, nil
}

// menuSection locates the menu by ARIA label, test id, or any section whose
// text mentions a menu.
func menuSection(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find(`section[aria-label="Menu"]`); sel.Length() > 0 {
		return sel.First()
	}
	if sel := doc.Find(`section[data-testid="menu-section"]`); sel.Length() > 0 {
		return sel.First()
	}

	var found *goquery.Selection
	doc.Find("section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(s.Text()), "menu") {
			found = s
			return false
		}
		return true
	})
	return found
}

// reviewItems extracts item-shaped text nodes: class-name heuristics first,
// generic heading/paragraph nodes second, text length bounded 5-100.
func reviewItems(section *goquery.Selection) []string {
	var nodes []*goquery.Selection

	section.Find("div, li").Each(func(_ int, s *goquery.Selection) {
		class := strings.ToLower(s.AttrOr("class", ""))
		if strings.Contains(class, "menu-item") || strings.Contains(class, "dish-name") {
			nodes = append(nodes, s)
		}
	})

	if len(nodes) == 0 {
		section.Find("h4, h5, p").Each(func(_ int, s *goquery.Selection) {
			nodes = append(nodes, s)
		})
	}

	var items []string
	for _, n := range nodes {
		text := normalizeItemText(n.Text())
		if len(text) > 5 && len(text) < 100 {
			items = append(items, text)
		}
	}
	return items
}
