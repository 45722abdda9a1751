package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher retrieves and parses menu pages.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *Fetcher) Get(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

var menuKeywords = []string{
	"menu", "food", "appetizer", "entree", "main",
	"dessert", "dinner", "lunch", "breakfast", "dish",
}

var (
	pricePattern = regexp.MustCompile(`\$\d+\.\d{2}|\$\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// extractDishes pulls candidate dish strings from a restaurant page:
// structured JSON-LD menu markup first, then keyword-tagged containers,
// headers, and price-bearing elements. Items are length bounded (10-200)
// and de-duplicated.
func extractDishes(doc *goquery.Document) ([]string, map[Category][]string) {
	if dishes := structuredMenuItems(doc); len(dishes) >= 3 {
		return dishes, nil
	}

	sections := menuSections(doc)
	if len(sections) == 0 {
		return nil, nil
	}

	var dishes []string
	categories := make(map[Category][]string)

	for _, section := range sections {
		category := sectionCategory(section)

		items := itemNodes(section)
		for _, item := range items {
			text := normalizeItemText(item.Text())
			if len(text) <= 10 || len(text) >= 200 {
				continue
			}
			dishes = append(dishes, text)
			if category != "" {
				categories[category] = append(categories[category], text)
			}
		}
	}

	// De-duplicate preserving first occurrence.
	seen := make(map[string]bool, len(dishes))
	distinct := dishes[:0]
	for _, d := range dishes {
		key := strings.ToLower(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, d)
	}

	if len(categories) == 0 {
		categories = nil
	}
	return distinct, categories
}

// structuredMenuItems reads schema.org menu markup out of JSON-LD blocks.
func structuredMenuItems(doc *goquery.Document) []string {
	var dishes []string

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}

		sections, ok := data["hasMenuSection"].([]any)
		if !ok {
			return true
		}

		for _, sec := range sections {
			secMap, ok := sec.(map[string]any)
			if !ok {
				continue
			}
			items, ok := secMap["hasMenuItem"].([]any)
			if !ok {
				continue
			}
			for _, item := range items {
				itemMap, ok := item.(map[string]any)
				if !ok {
					continue
				}
				if name, ok := itemMap["name"].(string); ok && name != "" {
					dishes = append(dishes, name)
				}
			}
		}

		return len(dishes) < 3
	})

	return dishes
}

// menuSections finds containers likely to hold menu content: elements with
// menu-keyword classes or ids, or parents of menu-keyword headers.
func menuSections(doc *goquery.Document) []*goquery.Selection {
	var sections []*goquery.Selection

	doc.Find("section, div, ul, nav").Each(func(_ int, s *goquery.Selection) {
		attrs := strings.ToLower(s.AttrOr("class", "") + " " + s.AttrOr("id", ""))
		for _, keyword := range menuKeywords {
			if strings.Contains(attrs, keyword) {
				sections = append(sections, s)
				return
			}
		}
	})

	if len(sections) > 0 {
		return sections
	}

	doc.Find("h1, h2, h3, h4, h5").Each(func(_ int, s *goquery.Selection) {
		heading := strings.ToLower(s.Text())
		for _, keyword := range menuKeywords {
			if strings.Contains(heading, keyword) {
				sections = append(sections, s.Parent())
				return
			}
		}
	})

	return sections
}

// sectionCategory guesses the bucket of a whole section from its text.
func sectionCategory(section *goquery.Selection) Category {
	text := strings.ToLower(section.Text())

	switch {
	case containsAny(text, "appetizer", "starter", "small plate"):
		return CategoryAppetizer
	case containsAny(text, "dessert", "sweet", "pastry"):
		return CategoryDessert
	case containsAny(text, "main", "entree", "dinner"):
		return CategoryMain
	default:
		return ""
	}
}

// itemNodes finds item-shaped elements inside a section, trying class-name
// heuristics first, then price-bearing elements, then plain list/paragraph
// nodes.
func itemNodes(section *goquery.Selection) []*goquery.Selection {
	var items []*goquery.Selection

	section.Find("li, div, article").Each(func(_ int, s *goquery.Selection) {
		class := strings.ToLower(s.AttrOr("class", ""))
		if containsAny(class, "item", "dish", "food", "menu-item", "product") {
			items = append(items, s)
		}
	})
	if len(items) > 0 {
		return items
	}

	section.Find("div, li, p, span").Each(func(_ int, s *goquery.Selection) {
		if pricePattern.MatchString(s.Text()) {
			items = append(items, s)
		}
	})
	if len(items) > 0 {
		return items
	}

	section.Find("li, p").Each(func(_ int, s *goquery.Selection) {
		items = append(items, s)
	})
	return items
}

func normalizeItemText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
