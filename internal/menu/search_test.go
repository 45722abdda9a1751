package menu

import (
	"testing"

	"github.com/shrvya4/Glucose-Guardian/internal/websearch"
)

func TestRankResultsPrefersAggregators(t *testing.T) {
	results := []websearch.Result{
		{Title: "Tandoor Palace - Home", Link: "https://tandoorpalace.com"},
		{Title: "Tandoor Palace Menu", Link: "https://www.yelp.com/menu/tandoor-palace"},
		{Title: "Tandoor Palace Menu - Official", Link: "https://tandoorpalace.com/menu"},
	}

	best := rankResults("Tandoor Palace", results)
	if best == nil {
		t.Fatal("expected a ranked result")
	}
	if best.Link != "https://www.yelp.com/menu/tandoor-palace" {
		t.Errorf("best = %s, want the aggregator link", best.Link)
	}
}

func TestRankResultsFallsBackToOwnSite(t *testing.T) {
	results := []websearch.Result{
		{Title: "Reviews of Tandoor Palace", Link: "https://example.com/reviews"},
		{Title: "Our Menu", Link: "https://tandoor-palace.com/menu"},
	}

	best := rankResults("Tandoor Palace", results)
	if best == nil || best.Link != "https://tandoor-palace.com/menu" {
		t.Fatalf("best = %+v, want the restaurant's own menu page", best)
	}
}

func TestRankResultsAnyMenuMention(t *testing.T) {
	results := []websearch.Result{
		{Title: "Local dining guide", Link: "https://example.com/guide", Snippet: "full menu inside"},
		{Title: "Unrelated", Link: "https://example.com/other"},
	}

	best := rankResults("Somewhere", results)
	if best == nil || best.Link != "https://example.com/guide" {
		t.Fatalf("best = %+v", best)
	}
}

func TestRankResultsNoMenuMention(t *testing.T) {
	results := []websearch.Result{
		{Title: "News article", Link: "https://example.com/news"},
	}

	if best := rankResults("Somewhere", results); best != nil {
		t.Errorf("expected nil, got %+v", best)
	}
}
