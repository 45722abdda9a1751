package menu

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// Selectors observed on the map service's restaurant pages. Brittle by
// nature; when they rot this strategy fails silently and the pipeline moves
// on.
const (
	mapsSearchBox   = "#searchboxinput"
	mapsFirstResult = "a.hfpxzc"
	mapsTabSel      = "div.Gpq6kf.NlVald"
	mapsItemSel     = ".Io6YTe.fontBodyMedium.kR99db.fdkmkc"
)

// MapsStrategy drives a headless browser session against the map service:
// search the restaurant, open its detail page, click the menu tab, walk the
// category sub-tabs and collect item text. The session is exclusively owned
// for the attempt and released on every exit path.
type MapsStrategy struct {
	timeout time.Duration
}

func NewMapsStrategy() *MapsStrategy {
	return &MapsStrategy{timeout: 90 * time.Second}
}

func (s *MapsStrategy) Name() string { return "map-service" }

func (s *MapsStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(browserUserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.timeout)
	defer cancelRun()

	if err := s.openRestaurant(runCtx, req); err != nil {
		return nil, err
	}

	dishes, categories, pageURL, err := s.collectMenu(runCtx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Dishes:     dishes,
		Categories: categories,
		Source:     SourceMapService,
		URL:        pageURL,
	}, nil
}

func (s *MapsStrategy) openRestaurant(ctx context.Context, req Request) error {
	query := req.Name
	if req.Address != "" {
		query += " " + req.Address
	}

	err := chromedp.Run(ctx,
		chromedp.Navigate("https://www.google.com/maps"),
		chromedp.WaitVisible(mapsSearchBox, chromedp.ByQuery),
		chromedp.SendKeys(mapsSearchBox, query+kb.Enter, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
	)
	if err != nil {
		return fmt.Errorf("map search: %w", err)
	}

	// The search can land directly on a detail page; only click through when
	// a result list is shown.
	var opened bool
	err = chromedp.Run(ctx,
		chromedp.Evaluate(fmt.Sprintf(`(() => {
			const r = document.querySelector(%q);
			if (r) { r.click(); return true; }
			return document.querySelector("h1") !== null;
		})()`, mapsFirstResult), &opened),
		chromedp.Sleep(3*time.Second),
	)
	if err != nil {
		return fmt.Errorf("open result: %w", err)
	}
	if !opened {
		return errors.New("no restaurant results on map service")
	}

	return nil
}

func (s *MapsStrategy) collectMenu(ctx context.Context) ([]string, map[Category][]string, string, error) {
	var pageURL string
	_ = chromedp.Run(ctx, chromedp.Location(&pageURL))

	initialTabs, err := s.tabLabels(ctx)
	if err != nil {
		return nil, nil, "", err
	}

	menuClicked, err := s.clickTabContaining(ctx, "menu")
	if err != nil {
		return nil, nil, "", err
	}

	if !menuClicked {
		// No explicit menu affordance: scan the detail page for
		// menu-item-shaped text blocks directly.
		items, err := s.itemTexts(ctx)
		if err != nil || len(items) == 0 {
			return nil, nil, "", errors.New("no menu tab and no inline menu items")
		}
		log.Printf("MAPS_INLINE_ITEMS count=%d", len(items))
		return items, nil, pageURL, nil
	}

	if err := chromedp.Run(ctx, chromedp.Sleep(3*time.Second)); err != nil {
		return nil, nil, "", err
	}

	allTabs, err := s.tabLabels(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	categoryTabs := newLabels(initialTabs, allTabs)

	if len(categoryTabs) == 0 {
		items, err := s.itemTexts(ctx)
		if err != nil {
			return nil, nil, "", err
		}
		return items, nil, pageURL, nil
	}

	var dishes []string
	categories := make(map[Category][]string)

	for _, label := range categoryTabs {
		clicked, err := s.clickTabContaining(ctx, strings.ToLower(label))
		if err != nil || !clicked {
			log.Printf("MAPS_CATEGORY_SKIPPED tab=%q err=%v", label, err)
			continue
		}
		_ = chromedp.Run(ctx, chromedp.Sleep(2*time.Second))

		items, err := s.itemTexts(ctx)
		if err != nil {
			continue
		}

		category := tabCategory(label)
		dishes = append(dishes, items...)
		categories[category] = append(categories[category], items...)
	}

	return dishes, categories, pageURL, nil
}

// tabLabels returns the visible text of every tab control on the page.
func (s *MapsStrategy) tabLabels(ctx context.Context) ([]string, error) {
	var labels []string
	err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(
		`[...document.querySelectorAll(%q)].map(t => t.textContent.trim())`,
		mapsTabSel,
	), &labels))
	return labels, err
}

// clickTabContaining clicks the first tab whose label contains needle.
func (s *MapsStrategy) clickTabContaining(ctx context.Context, needle string) (bool, error) {
	var clicked bool
	err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(`(() => {
		for (const t of document.querySelectorAll(%q)) {
			if (t.textContent.trim().toLowerCase().includes(%q)) {
				t.click();
				return true;
			}
		}
		return false;
	})()`, mapsTabSel, needle), &clicked))
	return clicked, err
}

// itemTexts collects menu-item-shaped text blocks from the current pane.
func (s *MapsStrategy) itemTexts(ctx context.Context) ([]string, error) {
	var raw []string
	err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(
		`[...document.querySelectorAll(%q)].map(e => e.textContent.trim())`,
		mapsItemSel,
	), &raw))
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, len(raw))
	for _, text := range raw {
		if len(text) > 3 {
			items = append(items, text)
		}
	}
	return items, nil
}

// tabCategory maps a category tab label to a bucket; main is the default.
func tabCategory(label string) Category {
	lower := strings.ToLower(label)
	switch {
	case containsAny(lower, "appetizer", "starter", "small plate"):
		return CategoryAppetizer
	case containsAny(lower, "dessert", "sweet", "pastry"):
		return CategoryDessert
	default:
		return CategoryMain
	}
}

// newLabels returns labels present in after but not in before.
func newLabels(before, after []string) []string {
	seen := make(map[string]bool, len(before))
	for _, l := range before {
		seen[l] = true
	}

	var fresh []string
	for _, l := range after {
		if !seen[l] {
			fresh = append(fresh, l)
		}
	}
	return fresh
}
