package llm

import "strings"

// ExtractJSON pulls the first {...} block out of a model response. Models
// routinely wrap JSON in markdown fences or prose even when told not to.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
