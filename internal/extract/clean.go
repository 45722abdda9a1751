package extract

import (
	"log"
	"regexp"
	"strings"
)

// CleanReportText normalizes extracted document text before it is handed to
// the summarization pipeline. CGM PDFs carry page furniture and OCR garbage
// that only waste model context.
func CleanReportText(rawText string) string {
	if rawText == "" {
		return rawText
	}

	text := removePageNoise(rawText)
	text = normalizeWhitespace(text)
	text = removeArtifacts(text)
	text = smartTruncate(text)

	if len(rawText) > 0 {
		log.Printf("CLEAN_DONE in=%d out=%d", len(rawText), len(text))
	}

	return text
}

var pageNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*page\s*\d+\s*$`),
	regexp.MustCompile(`(?i)^\s*\d+\s*/\s*\d+\s*$`),
	regexp.MustCompile(`(?i)^\s*confidential\s*$`),
}

var numericLine = regexp.MustCompile(`^\d*\.?\d+$`)

func removePageNoise(text string) string {
	lines := strings.Split(text, "\n")
	var clean []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		remove := false

		for _, pattern := range pageNoisePatterns {
			if pattern.MatchString(trimmed) {
				remove = true
				break
			}
		}

		// Very short lines are usually noise, but keep glucose readings
		// and other bare numbers that survived the patterns above.
		if !remove && trimmed != "" && len(trimmed) < 3 {
			if !numericLine.MatchString(trimmed) {
				remove = true
			}
		}

		if !remove {
			clean = append(clean, line)
		}
	}

	return strings.Join(clean, "\n")
}

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

func normalizeWhitespace(text string) string {
	text = multiSpace.ReplaceAllString(text, " ")
	text = multiNewline.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

func removeArtifacts(text string) string {
	artifacts := []string{"��", "�", "\f", "©", "™", "®"}
	for _, artifact := range artifacts {
		text = strings.ReplaceAll(text, artifact, "")
	}
	return text
}

// smartTruncate caps input length for the model, preferring to cut at a
// paragraph break.
func smartTruncate(text string) string {
	const maxLength = 15000

	if len(text) <= maxLength {
		return text
	}

	truncated := text[:maxLength]
	if idx := strings.LastIndex(truncated, "\n\n"); idx > maxLength/2 {
		truncated = truncated[:idx]
	}

	log.Printf("CLEAN_TRUNCATED from=%d to=%d", len(text), len(truncated))
	return truncated
}
