package glucose

import (
	"strings"
	"time"
)

// MealSlot is the closed set of meal types a CGM report entry can carry.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// ParseSlot normalizes free-form slot text from the extraction stage.
// Anything unrecognized lands in snack rather than being dropped.
func ParseSlot(s string) MealSlot {
	switch MealSlot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotBreakfast:
		return SlotBreakfast
	case SlotLunch:
		return SlotLunch
	case SlotDinner:
		return SlotDinner
	default:
		return SlotSnack
	}
}

// Classification tags a post-meal reading.
type Classification string

const (
	Spike    Classification = "spike"
	Friendly Classification = "friendly"
	Neutral  Classification = "neutral"
)

// Classify is exhaustive over all readings: spike above 140 mg/dL, friendly
// in 70-130, neutral for everything else. Computed here, never left to the
// model.
func Classify(readingMgDl float64) Classification {
	switch {
	case readingMgDl > 140:
		return Spike
	case readingMgDl >= 70 && readingMgDl <= 130:
		return Friendly
	default:
		return Neutral
	}
}

// MealRecord is one extracted meal. Immutable once created.
type MealRecord struct {
	Slot           MealSlot       `json:"slot"`
	Foods          []string       `json:"foods"`
	ReadingMgDl    float64        `json:"reading_mg_dl"`
	Classification Classification `json:"classification"`
}

// Profile is the per-user glucose profile: structured meals plus the
// narrative summary. Replaced wholesale on each re-analysis.
type Profile struct {
	Meals     []MealRecord `json:"meals"`
	Summary   string       `json:"summary"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StoredProfile is the persisted shape: the narrative plus the archive key
// of the original report. Structured meals are not persisted.
type StoredProfile struct {
	Summary   string    `json:"summary"`
	ReportKey string    `json:"report_key,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
