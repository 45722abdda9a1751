package recommend

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shrvya4/Glucose-Guardian/internal/llm"
)

// Matcher compares a menu against the user's glucose history. The matching
// itself is delegated to the generative service; this side only enforces
// the output structure.
type Matcher struct {
	client llm.Client
}

func NewMatcher(client llm.Client) *Matcher {
	return &Matcher{client: client}
}

// Match sends the profile narrative and the dish list to the model and
// parses the fixed safe/avoid/combos structure out of the response.
func (m *Matcher) Match(
	ctx context.Context,
	glucoseSummary string,
	dishes []string,
) (*Recommendation, error) {

	if glucoseSummary == "" {
		return nil, errors.New("empty glucose summary")
	}
	if len(dishes) == 0 {
		return nil, errors.New("empty dish list")
	}

	out, err := m.client.Generate(ctx, llm.BuildRecommendationPrompt(glucoseSummary, dishes))
	if err != nil {
		return nil, err
	}

	jsonText := out
	if !json.Valid([]byte(jsonText)) {
		jsonText = llm.ExtractJSON(out)
		if jsonText == "" {
			return nil, errors.New("matcher returned no JSON")
		}
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(jsonText), &rec); err != nil {
		return nil, errors.New("invalid matcher JSON: " + err.Error())
	}

	if len(rec.Safe) == 0 && len(rec.Avoid) == 0 && len(rec.Combos) == 0 {
		return nil, errors.New("matcher returned an empty recommendation")
	}

	return &rec, nil
}
