package menu

import (
	"context"
	"errors"
	"testing"
)

type fakeLLM struct {
	out string
	err error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.out, f.err
}

const simulatedMenuText = `Appetizers:
- Vegetable Samosa
- Paneer Tikka

Main Course:
- Butter Chicken
- Dal Makhani
- Lamb Biryani

Desserts:
- Gulab Jamun
`

func TestSimulationStrategyParsesCategorizedMenu(t *testing.T) {
	s := NewSimulationStrategy(&fakeLLM{out: simulatedMenuText})

	result, err := s.Attempt(context.Background(), Request{Name: "Tandoor Palace"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Source != SourceSimulated {
		t.Errorf("source = %s, want simulated", result.Source)
	}
	if len(result.Dishes) != 6 {
		t.Fatalf("dishes = %d, want 6: %v", len(result.Dishes), result.Dishes)
	}
	if n := len(result.Categories[CategoryAppetizer]); n != 2 {
		t.Errorf("appetizers = %d, want 2", n)
	}
	if n := len(result.Categories[CategoryMain]); n != 3 {
		t.Errorf("mains = %d, want 3", n)
	}
	if n := len(result.Categories[CategoryDessert]); n != 1 {
		t.Errorf("desserts = %d, want 1", n)
	}
}

func TestSimulationStrategyRejectsThinMenu(t *testing.T) {
	s := NewSimulationStrategy(&fakeLLM{out: "- Only Dish\n- Second Dish\n"})

	_, err := s.Attempt(context.Background(), Request{Name: "Somewhere"})
	if err == nil {
		t.Fatal("expected error for menu with fewer than 3 dishes")
	}
}

func TestSimulationStrategyPropagatesLLMFailure(t *testing.T) {
	s := NewSimulationStrategy(&fakeLLM{err: errors.New("service unavailable")})

	_, err := s.Attempt(context.Background(), Request{Name: "Somewhere"})
	if err == nil {
		t.Fatal("expected error when generation fails")
	}
}

func TestParseSimulatedMenuIgnoresProse(t *testing.T) {
	text := `Here is a plausible menu for this restaurant, with authentic dishes.

Appetizers:
- Spring Rolls
- Wonton Soup

Main Course:
- Kung Pao Chicken
`
	dishes, categories := parseSimulatedMenu(text)
	if len(dishes) != 3 {
		t.Fatalf("dishes = %v", dishes)
	}
	if len(categories[CategoryAppetizer]) != 2 {
		t.Errorf("appetizers = %v", categories[CategoryAppetizer])
	}
}
