package menu

import "strings"

// Source is the provenance tag on an acquired menu.
type Source string

const (
	SourceMapService Source = "map-service"
	SourceWebSearch  Source = "web-search"
	SourceReviewSite Source = "review-site"
	SourceSimulated  Source = "simulated"
)

// Category buckets for dishes. Anything uncategorized is a main.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
)

// Per-category caps bound the payload handed to the matcher.
var categoryCaps = map[Category]int{
	CategoryAppetizer: 5,
	CategoryMain:      8,
	CategoryDessert:   3,
}

// Request identifies the restaurant a menu is wanted for.
type Request struct {
	Name        string
	Address     string
	PlaceID     string
	CuisineHint string
}

// Location returns the leading address segment, the search-friendly part.
func (r Request) Location() string {
	if idx := strings.Index(r.Address, ","); idx > 0 {
		return strings.TrimSpace(r.Address[:idx])
	}
	return strings.TrimSpace(r.Address)
}

// Result is an acquired menu. Ephemeral — held for one analysis request.
type Result struct {
	Dishes     []string              `json:"dishes"`
	Categories map[Category][]string `json:"categories,omitempty"`
	Source     Source                `json:"source"`
	URL        string                `json:"url,omitempty"`
}

// DistinctDishes de-duplicates while preserving order.
func (r *Result) DistinctDishes() []string {
	seen := make(map[string]bool, len(r.Dishes))
	distinct := make([]string, 0, len(r.Dishes))

	for _, dish := range r.Dishes {
		key := strings.ToLower(strings.TrimSpace(dish))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, strings.TrimSpace(dish))
	}

	return distinct
}

// Usable reports whether the result is rich enough to analyze: at least 3
// distinct dishes.
func (r *Result) Usable() bool {
	return r != nil && len(r.DistinctDishes()) >= 3
}

// Normalize de-duplicates the dish list and applies the per-category caps.
// Results that arrive uncategorized are bucketed by keyword first, so the
// caps always bound the flat list handed downstream.
func (r *Result) Normalize() {
	r.Dishes = r.DistinctDishes()

	if len(r.Categories) == 0 {
		r.Categories = make(map[Category][]string)
		for _, dish := range r.Dishes {
			cat := categorize(dish)
			r.Categories[cat] = append(r.Categories[cat], dish)
		}
	}

	for cat, items := range r.Categories {
		cap, ok := categoryCaps[cat]
		if ok && len(items) > cap {
			r.Categories[cat] = items[:cap]
		}
	}

	// The flat list is the matcher payload; rebuild it from the capped
	// categories so the caps actually hold.
	allowed := make(map[string]bool)
	for _, items := range r.Categories {
		for _, item := range items {
			allowed[strings.ToLower(strings.TrimSpace(item))] = true
		}
	}

	kept := r.Dishes[:0]
	for _, dish := range r.Dishes {
		if allowed[strings.ToLower(dish)] {
			kept = append(kept, dish)
		}
	}
	r.Dishes = kept
}

// categorize buckets an item by its text; default bucket is main.
func categorize(text string) Category {
	lower := strings.ToLower(text)

	appetizerWords := []string{"appetizer", "starter", "small plate", "salad", "soup", "side"}
	dessertWords := []string{"dessert", "sweet", "cake", "ice cream", "chocolate", "pudding", "pie"}

	for _, w := range appetizerWords {
		if strings.Contains(lower, w) {
			return CategoryAppetizer
		}
	}
	for _, w := range dessertWords {
		if strings.Contains(lower, w) {
			return CategoryDessert
		}
	}
	return CategoryMain
}
