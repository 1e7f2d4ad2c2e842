package enrich_test

import (
	"strings"
	"testing"

	"taskboard/internal/enrich"
	"taskboard/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        model.Category
	}{
		{name: "Health keyword", description: "Schedule a doctor appointment", want: model.CategoryHealth},
		{name: "Finance keyword", description: "Buy groceries and pay rent", want: model.CategoryFinance},
		{name: "Empty defaults to Personal", description: "", want: model.CategoryPersonal},
		{name: "Work keyword", description: "Prepare the quarterly report", want: model.CategoryWork},
		{name: "Learning keyword", description: "Study for the math exam", want: model.CategoryLearning},
		{name: "Home keyword", description: "Do the laundry tonight", want: model.CategoryHome},
		{name: "No keyword defaults to Personal", description: "Call grandma", want: model.CategoryPersonal},
		{name: "Work beats Health on tie", description: "Book a meeting with the doctor", want: model.CategoryWork},
		{name: "Case insensitive", description: "PAY THE BILL", want: model.CategoryFinance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enrich.Categorize(tt.description); got != tt.want {
				t.Errorf("Categorize(%q) = %s, want %s", tt.description, got, tt.want)
			}
		})
	}
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{name: "Under five words", description: "Buy milk", want: "15-30 minutes"},
		{name: "Under ten words", description: "Buy milk eggs bread and cheese today", want: "30-60 minutes"},
		{name: "Under twenty words", description: strings.Repeat("word ", 15), want: "1-2 hours"},
		{name: "Twenty or more words", description: strings.Repeat("word ", 25), want: "2+ hours"},
		{name: "Empty description", description: "", want: "15-30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enrich.EstimateDuration(tt.description); got != tt.want {
				t.Errorf("EstimateDuration = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	description := "Buy milk"

	first := enrich.Summarize(description)
	second := enrich.Summarize(description)

	if first != second {
		t.Errorf("Summarize must be deterministic")
	}
	if !strings.Contains(first, description) {
		t.Errorf("summary %q must embed the description verbatim", first)
	}
}

func TestApply(t *testing.T) {
	e := enrich.Apply("Pay the electricity bill")

	if e.Category != model.CategoryFinance {
		t.Errorf("Category = %s, want Finance", e.Category)
	}
	if e.TimeEstimate != "15-30 minutes" {
		t.Errorf("TimeEstimate = %q, want 15-30 minutes", e.TimeEstimate)
	}
	if e.Summary == "" {
		t.Errorf("Summary must not be empty")
	}
}
