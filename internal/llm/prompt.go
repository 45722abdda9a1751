package llm

import (
	"fmt"
	"strings"
)

// BuildMealExtractionPrompt converts raw CGM report text into STRICT JSON.
// The model must never invent meals or foods that are not in the text; the
// spike/friendly classification is computed by the caller, not the model.
func BuildMealExtractionPrompt(reportText string) string {
	return `
You are a data extraction engine for CGM (continuous glucose monitor) reports.

Your task:
- Extract every meal entry from the report text into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.
- ONLY extract meals present in the text. Do NOT create or assume foods.
- Do NOT add example meals that are not present in the text.

If you cannot extract any meals, return this exact JSON:
{
  "meals": []
}

Required JSON schema:
{
  "meals": [
    {
      "slot": "breakfast | lunch | dinner | snack",
      "foods": ["string"],
      "reading_mg_dl": number
    }
  ]
}

CGM REPORT TEXT:
` + reportText
}

// BuildMealAnalysisPrompt reasons over the extracted meal list only. The raw
// report text is deliberately withheld so the analysis cannot reach beyond
// the extracted facts.
func BuildMealAnalysisPrompt(mealList string) string {
	return `
You are a nutrition-aware analyst who interprets blood sugar effects caused by real meals.

Based ONLY on the extracted meals and glucose readings below:
- Identify which specific foods caused spikes or were glucose-friendly.
- Look for patterns or food combinations that helped keep glucose stable.
- Only use meals present in the list. Do not generate or assume extra foods.

EXTRACTED MEALS:
` + mealList
}

// BuildGlucoseReportPrompt writes the user-facing narrative from the
// analysis. Same no-invented-foods constraint as the earlier stages.
func BuildGlucoseReportPrompt(analysis string) string {
	return `
You are writing a personal glucose report for the user.

- Use ONLY the meals and findings in the analysis below.
- Do NOT mention foods like pasta or spaghetti unless they appear in the analysis.
- Explain in a friendly, clear way how the user's real food impacted their glucose.
- End with practical advice grounded in their own meals.

ANALYSIS:
` + analysis
}

// cuisineHints mirrors the authentic-dish guidance used when simulating a
// menu for a cuisine we could not scrape.
var cuisineHints = map[string]string{
	"Indian":        "Include authentic dishes like curry, naan, biryani, tandoori items, chaat, dosa",
	"Chinese":       "Include authentic dishes like dim sum, stir-fries, noodles, rice dishes, dumplings",
	"Italian":       "Include authentic dishes like pasta, pizza, risotto, antipasti, bruschetta, tiramisu",
	"Mexican":       "Include authentic dishes like tacos, enchiladas, burritos, quesadillas, mole, guacamole",
	"Japanese":      "Include authentic dishes like sushi, ramen, tempura, teriyaki dishes, udon, sashimi",
	"Thai":          "Include authentic dishes like pad thai, curry, tom yum, satay, larb, som tam",
	"Mediterranean": "Include authentic dishes like hummus, falafel, kebab, shawarma, tabbouleh, dolma",
	"Korean":        "Include authentic dishes like bibimbap, bulgogi, kimchi dishes, Korean BBQ, japchae",
	"American":      "Include authentic dishes like burgers, steaks, sandwiches, salads, mac and cheese",
	"International": "Include a variety of popular dishes from different cuisines",
}

// BuildMenuSimulationPrompt asks for a plausible categorized menu, 8-10
// dishes authentic to the cuisine.
func BuildMenuSimulationPrompt(restaurantName, cuisine string) string {
	hint, ok := cuisineHints[cuisine]
	if !ok {
		hint = cuisineHints["International"]
	}

	return fmt.Sprintf(`
Generate a realistic menu for '%s'.
This is specifically a %s restaurant.
%s.
Include appetizers, main courses, and desserts.
List 8-10 popular dishes that would be found in this type of restaurant.
Make sure all dishes are authentic to %s cuisine.

Format the output EXACTLY like this, one dish per bullet:

Appetizers:
- [Appetizer 1]
- [Appetizer 2]

Main Courses:
- [Main Course 1]
- [Main Course 2]

Desserts:
- [Dessert 1]
- [Dessert 2]
`, restaurantName, cuisine, hint, cuisine)
}

// BuildRecommendationPrompt matches menu dishes against the user's personal
// glucose history. Output is STRICT JSON so the caller can parse it into a
// safe/avoid/combos structure.
func BuildRecommendationPrompt(glucoseSummary string, dishes []string) string {
	return fmt.Sprintf(`
You are a menu advisor who understands how specific ingredients affect glucose for this unique person.

User's glucose history summary:
%s

Restaurant menu dishes:
- %s

Your job:
- Flag dishes resembling foods that previously caused glucose spikes as "avoid".
- Flag dishes resembling foods that were glucose-friendly as "safe".
- Suggest combination adjustments (adding fiber, protein, or fat) for borderline dishes.
- Use knowledge of carbs, sugar, fiber, and ingredients to make intelligent suggestions.

Output MUST be valid JSON and ONLY JSON, in exactly this schema:
{
  "safe": [
    {"dish": "string", "reason": "why it's safe"}
  ],
  "avoid": [
    {"dish": "string", "reason": "matches spike foods or risky ingredients"}
  ],
  "combos": [
    "combo suggestion - why it helps with glucose stability"
  ]
}
`, glucoseSummary, strings.Join(dishes, "\n- "))
}

// BuildAdvicePrompt answers one-off glucose management questions briefly.
func BuildAdvicePrompt(question string) string {
	return fmt.Sprintf(
		"You are an expert in glucose management, specializing in practical, "+
			"evidence-based advice for everyday situations.\n\n"+
			"Provide a brief, practical 1-2 sentence response to: %s\n\n"+
			"Focus on actionable advice for managing glucose levels.",
		question,
	)
}
