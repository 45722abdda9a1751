package menu

import "testing"

func TestMenuSectionByAriaLabel(t *testing.T) {
	html := `<html><body>
		<section aria-label="Reviews"><p>Great place</p></section>
		<section aria-label="Menu"><p>Paneer Tikka</p></section>
	</body></html>`

	section := menuSection(docFrom(t, html))
	if section == nil {
		t.Fatal("menu section not found")
	}
	if got := normalizeItemText(section.Text()); got != "Paneer Tikka" {
		t.Errorf("section text = %q", got)
	}
}

func TestMenuSectionByTestID(t *testing.T) {
	html := `<html><body>
		<section data-testid="menu-section"><p>Butter Chicken</p></section>
	</body></html>`

	if menuSection(docFrom(t, html)) == nil {
		t.Fatal("menu section not found")
	}
}

func TestMenuSectionTextFallback(t *testing.T) {
	html := `<html><body>
		<section><h3>Our Menu</h3><p>Dal Makhani</p></section>
	</body></html>`

	if menuSection(docFrom(t, html)) == nil {
		t.Fatal("menu section not found")
	}
}

func TestReviewItemsClassHeuristicsFirst(t *testing.T) {
	html := `<html><body><section aria-label="Menu">
		<div class="menu-item">Paneer Tikka</div>
		<div class="menu-item">Butter Chicken</div>
		<p>Some unrelated paragraph that should be ignored</p>
	</section></body></html>`

	items := reviewItems(menuSection(docFrom(t, html)))
	if len(items) != 2 {
		t.Fatalf("items = %v", items)
	}
}

func TestReviewItemsHeadingFallbackAndBounds(t *testing.T) {
	html := `<html><body><section aria-label="Menu">
		<h4>Paneer Tikka</h4>
		<h4>abc</h4>
		<p>Dal Makhani with butter naan</p>
	</section></body></html>`

	items := reviewItems(menuSection(docFrom(t, html)))
	if len(items) != 2 {
		t.Fatalf("items = %v", items)
	}
	for _, item := range items {
		if len(item) <= 5 || len(item) >= 100 {
			t.Errorf("out-of-bounds item kept: %q", item)
		}
	}
}
