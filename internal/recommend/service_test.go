package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeLLM struct {
	out    string
	err    error
	prompt string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

const recommendationJSON = `{
	"safe": [{"dish": "Grilled Fish", "reason": "lean protein, similar to meals that stayed friendly"}],
	"avoid": [{"dish": "Pasta Alfredo", "reason": "refined carbs resemble your lunch spikes"}],
	"combos": ["Pair the fish with the side salad"]
}`

func TestMatchParsesRecommendation(t *testing.T) {
	client := &fakeLLM{out: recommendationJSON}
	matcher := NewMatcher(client)

	rec, err := matcher.Match(context.Background(), "Lunches spike on carbs.", []string{"Grilled Fish", "Pasta Alfredo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Safe) != 1 || rec.Safe[0].Dish != "Grilled Fish" {
		t.Errorf("safe = %+v", rec.Safe)
	}
	if len(rec.Avoid) != 1 || len(rec.Combos) != 1 {
		t.Errorf("avoid/combos = %+v / %+v", rec.Avoid, rec.Combos)
	}

	if !strings.Contains(client.prompt, "Lunches spike on carbs.") {
		t.Error("prompt missing glucose summary")
	}
	if !strings.Contains(client.prompt, "Pasta Alfredo") {
		t.Error("prompt missing dish list")
	}
}

func TestMatchHandlesFencedJSON(t *testing.T) {
	client := &fakeLLM{out: "Sure, here you go:\n```json\n" + recommendationJSON + "\n```"}
	matcher := NewMatcher(client)

	rec, err := matcher.Match(context.Background(), "summary", []string{"Dish"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Safe) != 1 {
		t.Errorf("safe = %+v", rec.Safe)
	}
}

func TestMatchRejectsEmptyInputs(t *testing.T) {
	matcher := NewMatcher(&fakeLLM{out: recommendationJSON})
	ctx := context.Background()

	if _, err := matcher.Match(ctx, "", []string{"Dish"}); err == nil {
		t.Error("expected error for empty summary")
	}
	if _, err := matcher.Match(ctx, "summary", nil); err == nil {
		t.Error("expected error for empty dish list")
	}
}

func TestMatchRejectsEmptyRecommendation(t *testing.T) {
	matcher := NewMatcher(&fakeLLM{out: `{"safe": [], "avoid": [], "combos": []}`})

	_, err := matcher.Match(context.Background(), "summary", []string{"Dish"})
	if err == nil {
		t.Fatal("expected error for empty recommendation")
	}
}

func TestMatchPropagatesLLMFailure(t *testing.T) {
	matcher := NewMatcher(&fakeLLM{err: errors.New("service down")})

	_, err := matcher.Match(context.Background(), "summary", []string{"Dish"})
	if err == nil {
		t.Fatal("expected error")
	}
}
