package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shrvya4/Glucose-Guardian/internal/websearch"
)

// Domains that aggregate restaurant menus; links into these rank first.
var menuAggregatorDomains = []string{
	"allmenus.com", "menupages.com", "grubhub.com", "doordash.com",
	"ubereats.com", "seamless.com", "zomato.com", "yelp.com",
	"openmenu.com", "menuism.com", "singleplatform.com", "tripadvisor.com",
	"foursquare.com", "restaurantji.com", "zmenu.com", "menu.com",
}

// SearchStrategy issues a "<name> <location> menu" query, ranks the hits,
// and extracts dishes from the top-ranked page with the website heuristics.
type SearchStrategy struct {
	search websearch.Searcher
	fetch  *Fetcher
}

func NewSearchStrategy(search websearch.Searcher, fetch *Fetcher) *SearchStrategy {
	return &SearchStrategy{search: search, fetch: fetch}
}

func (s *SearchStrategy) Name() string { return "web-search" }

func (s *SearchStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	query := fmt.Sprintf("%s %s menu", req.Name, req.Location())

	results, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	best := rankResults(req.Name, results)
	if best == nil {
		return nil, errors.New("no menu-bearing search result")
	}

	doc, err := s.fetch.Get(ctx, best.Link)
	if err != nil {
		return nil, err
	}

	dishes, categories := extractDishes(doc)
	if len(dishes) == 0 {
		return nil, errors.New("no menu content on top-ranked page")
	}

	return &Result{
		Dishes:     dishes,
		Categories: categories,
		Source:     SourceWebSearch,
		URL:        best.Link,
	}, nil
}

// rankResults prefers known menu-aggregator domains, then the restaurant's
// own site mentioning a menu, then any result that mentions a menu.
func rankResults(restaurantName string, results []websearch.Result) *websearch.Result {
	mentionsMenu := func(r websearch.Result) bool {
		return strings.Contains(strings.ToLower(r.Title), "menu") ||
			strings.Contains(strings.ToLower(r.Snippet), "menu")
	}

	for i, r := range results {
		if !mentionsMenu(r) {
			continue
		}
		for _, domain := range menuAggregatorDomains {
			if strings.Contains(r.Link, domain) {
				return &results[i]
			}
		}
	}

	nameToken := strings.ToLower(strings.ReplaceAll(restaurantName, " ", ""))
	for i, r := range results {
		link := strings.ToLower(strings.ReplaceAll(r.Link, "-", ""))
		if strings.Contains(strings.ReplaceAll(link, "/", ""), nameToken) && mentionsMenu(r) {
			return &results[i]
		}
	}

	for i, r := range results {
		if mentionsMenu(r) {
			return &results[i]
		}
	}

	return nil
}
