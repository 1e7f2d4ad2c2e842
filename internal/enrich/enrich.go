package enrich

import (
	"fmt"
	"strings"

	"taskboard/internal/model"
)

// categoryKeywords maps each category to its trigger keywords.
// Matching is evaluated in the order of categoryOrder; the first category
// with any keyword present wins. The order is a deliberate tie-break and
// must stay fixed so the same description always classifies the same way.
var categoryKeywords = map[model.Category][]string{
	model.CategoryWork:     {"meeting", "report", "email", "project", "deadline", "presentation", "client", "standup", "review"},
	model.CategoryHealth:   {"doctor", "dentist", "gym", "workout", "exercise", "appointment", "medicine", "therapy"},
	model.CategoryLearning: {"learn", "study", "course", "tutorial", "research", "practice", "lecture", "book"},
	model.CategoryFinance:  {"pay", "bill", "budget", "bank", "tax", "invoice", "rent", "insurance", "salary"},
	model.CategoryHome:     {"clean", "laundry", "grocery", "groceries", "cook", "repair", "garden", "organize", "fix"},
}

var categoryOrder = []model.Category{
	model.CategoryWork,
	model.CategoryHealth,
	model.CategoryLearning,
	model.CategoryFinance,
	model.CategoryHome,
}

// Categorize assigns a category by keyword match on the lower-cased
// description. Descriptions matching nothing fall back to Personal.
func Categorize(description string) model.Category {
	lower := strings.ToLower(description)

	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}

	return model.CategoryPersonal
}

// EstimateDuration buckets the description by word count into one of four
// fixed duration labels.
func EstimateDuration(description string) string {
	words := len(strings.Fields(description))

	switch {
	case words < 5:
		return "15-30 minutes"
	case words < 10:
		return "30-60 minutes"
	case words < 20:
		return "1-2 hours"
	default:
		return "2+ hours"
	}
}

// Summarize produces a deterministic templated action plan embedding the
// description verbatim. No external call.
func Summarize(description string) string {
	return fmt.Sprintf(
		"1. Review what %q involves. 2. Block out the estimated time. 3. Complete the task and mark it done.",
		description,
	)
}

// Enrichment bundles the three locally computed fields.
type Enrichment struct {
	Category     model.Category
	TimeEstimate string
	Summary      string
}

// Apply runs all three heuristics at once. Used when the external
// enrichment service is unavailable.
func Apply(description string) Enrichment {
	return Enrichment{
		Category:     Categorize(description),
		TimeEstimate: EstimateDuration(description),
		Summary:      Summarize(description),
	}
}
