package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/shrvya4/Glucose-Guardian/internal/cuisine"
	"github.com/shrvya4/Glucose-Guardian/internal/llm"
)

// SimulationStrategy is the terminal fallback: generate a plausible menu
// authentic to the restaurant's (inferred) cuisine. If even this fails the
// pipeline reports the menu unavailable.
type SimulationStrategy struct {
	client llm.Client
}

func NewSimulationStrategy(client llm.Client) *SimulationStrategy {
	return &SimulationStrategy{client: client}
}

func (s *SimulationStrategy) Name() string { return "simulated" }

func (s *SimulationStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	label := cuisine.Classify(req.Name, req.CuisineHint)

	out, err := s.client.Generate(ctx, llm.BuildMenuSimulationPrompt(req.Name, label))
	if err != nil {
		return nil, err
	}

	dishes, categories := parseSimulatedMenu(out)
	if len(dishes) < 3 {
		return nil, errors.New("simulated menu too thin")
	}

	return &Result{
		Dishes:     dishes,
		Categories: categories,
		Source:     SourceSimulated,
	}, nil
}

// parseSimulatedMenu reads the bullet-list format the simulation prompt
// demands: category headers followed by "- dish" lines.
func parseSimulatedMenu(text string) ([]string, map[Category][]string) {
	var dishes []string
	categories := make(map[Category][]string)

	current := CategoryMain

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "appetizer") || strings.Contains(lower, "starter"):
			if isHeader(line) {
				current = CategoryAppetizer
				continue
			}
		case strings.Contains(lower, "dessert"):
			if isHeader(line) {
				current = CategoryDessert
				continue
			}
		case strings.Contains(lower, "main course") || strings.Contains(lower, "entree"):
			if isHeader(line) {
				current = CategoryMain
				continue
			}
		}

		dish, ok := stripBullet(line)
		if !ok {
			continue
		}

		dishes = append(dishes, dish)
		categories[current] = append(categories[current], dish)
	}

	if len(categories) == 0 {
		categories = nil
	}
	return dishes, categories
}

// isHeader treats short non-bullet lines (often ending in a colon) as
// category headers.
func isHeader(line string) bool {
	if _, bullet := stripBullet(line); bullet {
		return false
	}
	return len(line) < 40
}

func stripBullet(line string) (string, bool) {
	for _, prefix := range []string{"- ", "• ", "* "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}
