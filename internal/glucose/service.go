package glucose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shrvya4/Glucose-Guardian/internal/llm"
)

// Pipeline stage names surfaced in SummarizationError.
const (
	StageExtraction = "extraction"
	StageAnalysis   = "analysis"
	StageReporting  = "reporting"
)

// SummarizationError names the stage that failed. No automatic retry; the
// user may re-attempt manually.
type SummarizationError struct {
	Stage string
	Err   error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed at %s stage: %v", e.Stage, e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// Summarizer runs the three-stage CGM analysis: extract meals, analyze
// patterns, write the report. Stages run strictly in sequence — each prompt
// embeds the previous stage's output.
type Summarizer struct {
	client llm.Client
}

func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// extractedMeal is the strict-JSON shape stage 1 must produce.
type extractedMeal struct {
	Slot        string   `json:"slot"`
	Foods       []string `json:"foods"`
	ReadingMgDl float64  `json:"reading_mg_dl"`
}

// Summarize turns raw CGM report text into a Profile.
func (s *Summarizer) Summarize(ctx context.Context, rawText string) (*Profile, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &SummarizationError{Stage: StageExtraction, Err: errors.New("empty report text")}
	}

	// Stage 1: structured meal extraction, classification computed here.
	meals, err := s.extractMeals(ctx, rawText)
	if err != nil {
		return nil, &SummarizationError{Stage: StageExtraction, Err: err}
	}

	mealList := formatMealList(meals)
	log.Printf("SUMMARIZE_EXTRACTED meals=%d", len(meals))

	// Stage 2: pattern analysis, restricted to stage-1 output only.
	analysis, err := s.client.Generate(ctx, llm.BuildMealAnalysisPrompt(mealList))
	if err != nil {
		return nil, &SummarizationError{Stage: StageAnalysis, Err: err}
	}

	// Stage 3: user-facing narrative.
	narrative, err := s.client.Generate(ctx, llm.BuildGlucoseReportPrompt(analysis))
	if err != nil {
		return nil, &SummarizationError{Stage: StageReporting, Err: err}
	}

	return &Profile{
		Meals:     meals,
		Summary:   strings.TrimSpace(narrative),
		UpdatedAt: time.Now(),
	}, nil
}

func (s *Summarizer) extractMeals(ctx context.Context, rawText string) ([]MealRecord, error) {
	out, err := s.client.Generate(ctx, llm.BuildMealExtractionPrompt(rawText))
	if err != nil {
		return nil, err
	}

	jsonText := out
	if !json.Valid([]byte(jsonText)) {
		jsonText = llm.ExtractJSON(out)
		if jsonText == "" {
			return nil, errors.New("extraction stage returned no JSON")
		}
	}

	var parsed struct {
		Meals []extractedMeal `json:"meals"`
	}
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, errors.New("invalid extraction JSON: " + err.Error())
	}

	if len(parsed.Meals) == 0 {
		return nil, errors.New("no meals found in report")
	}

	records := make([]MealRecord, 0, len(parsed.Meals))
	for _, m := range parsed.Meals {
		if len(m.Foods) == 0 {
			continue
		}
		records = append(records, MealRecord{
			Slot:           ParseSlot(m.Slot),
			Foods:          m.Foods,
			ReadingMgDl:    m.ReadingMgDl,
			Classification: Classify(m.ReadingMgDl),
		})
	}

	if len(records) == 0 {
		return nil, errors.New("no meals with foods found in report")
	}

	return records, nil
}

// formatMealList renders stage-1 output as the line format the analysis
// stage consumes, e.g.
// "Lunch: Chickpea salad + roti paneer → 150 mg/dL (spike)".
func formatMealList(meals []MealRecord) string {
	var sb strings.Builder
	for _, m := range meals {
		slot := strings.ToUpper(string(m.Slot)[:1]) + string(m.Slot)[1:]
		fmt.Fprintf(&sb, "%s: %s → %.0f mg/dL (%s)\n",
			slot,
			strings.Join(m.Foods, " + "),
			m.ReadingMgDl,
			m.Classification,
		)
	}
	return sb.String()
}
