package menu

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// --------------------------------------------------
// Stub Strategy
// --------------------------------------------------

type stubStrategy struct {
	name   string
	result *Result
	err    error
	called bool
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	s.called = true
	return s.result, s.err
}

func menuOf(source Source, dishes ...string) *Result {
	return &Result{Dishes: dishes, Source: source}
}

func TestAcquireMenuFirstUsableWins(t *testing.T) {
	maps := &stubStrategy{name: "map-service", result: menuOf(SourceMapService, "A", "B", "C")}
	simulated := &stubStrategy{name: "simulated", result: menuOf(SourceSimulated, "X", "Y", "Z")}

	pipeline := NewPipeline(maps, simulated)

	result, err := pipeline.AcquireMenu(context.Background(), Request{Name: "Tandoor Palace"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceMapService {
		t.Errorf("source = %s, want map-service", result.Source)
	}
	if simulated.called {
		t.Error("later strategy ran after a usable result")
	}
}

func TestAcquireMenuSkipsFailuresAndThinResults(t *testing.T) {
	failing := &stubStrategy{name: "map-service", err: errors.New("browser timeout")}
	thin := &stubStrategy{name: "review-site", result: menuOf(SourceReviewSite, "A", "a")}
	good := &stubStrategy{name: "web-search", result: menuOf(SourceWebSearch, "A", "B", "C", "D")}

	pipeline := NewPipeline(failing, thin, good)

	result, err := pipeline.AcquireMenu(context.Background(), Request{Name: "Somewhere"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceWebSearch {
		t.Errorf("source = %s, want web-search", result.Source)
	}
	if !failing.called || !thin.called {
		t.Error("earlier strategies were not attempted")
	}
}

func TestAcquireMenuAllFailReturnsMenuUnavailable(t *testing.T) {
	a := &stubStrategy{name: "map-service", err: errors.New("down")}
	b := &stubStrategy{name: "simulated", err: errors.New("llm down")}

	pipeline := NewPipeline(a, b)

	_, err := pipeline.AcquireMenu(context.Background(), Request{Name: "Somewhere"})
	if !errors.Is(err, ErrMenuUnavailable) {
		t.Fatalf("expected ErrMenuUnavailable, got %v", err)
	}
}

func TestAcquireMenuCapsMatcherPayload(t *testing.T) {
	// A large categorized scrape must come out capped on the flat dish
	// list, not just on the category map.
	result := &Result{Source: SourceMapService, Categories: make(map[Category][]string)}
	for i := 1; i <= 30; i++ {
		dish := fmt.Sprintf("Main Dish %d", i)
		result.Dishes = append(result.Dishes, dish)
		result.Categories[CategoryMain] = append(result.Categories[CategoryMain], dish)
	}

	pipeline := NewPipeline(&stubStrategy{name: "map-service", result: result})

	got, err := pipeline.AcquireMenu(context.Background(), Request{Name: "Somewhere"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(got.Dishes); n != 8 {
		t.Errorf("dishes = %d, want 8", n)
	}
	if n := len(got.Categories[CategoryMain]); n != 8 {
		t.Errorf("mains = %d, want 8", n)
	}
}

func TestAcquireMenuNormalizesResult(t *testing.T) {
	strategy := &stubStrategy{
		name:   "web-search",
		result: menuOf(SourceWebSearch, "A", "a", "B", "C"),
	}

	pipeline := NewPipeline(strategy)

	result, err := pipeline.AcquireMenu(context.Background(), Request{Name: "Somewhere"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Dishes) != 3 {
		t.Errorf("dishes not deduped: %v", result.Dishes)
	}
}
