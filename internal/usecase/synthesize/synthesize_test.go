package synthesize

import (
	"strings"
	"testing"

	"github.com/brightcart/shopchat/internal/domain"
)

func TestSummarize_Empty(t *testing.T) {
	for _, query := range []string{"", "red shoes", "anything at all"} {
		if got := Summarize(nil, query); got != NoMatchesMessage {
			t.Errorf("Summarize(nil, %q) = %q, want the fixed no-matches message", query, got)
		}
	}
}

func TestSummarize_Singular(t *testing.T) {
	out := Summarize([]domain.Product{
		{ProductType: "footwear", Brand: "Nike", Price: domain.Float(80)},
	}, "nike shoes")

	if !strings.Contains(out, "I found one product that matches your search:") {
		t.Errorf("missing singular opener:\n%s", out)
	}
	if strings.Contains(out, "Including ") {
		t.Error("single type must not produce a breakdown line")
	}
	if !strings.Contains(out, "1. a footwear from Nike priced at $80") {
		t.Errorf("unexpected detail line:\n%s", out)
	}
}

func TestSummarize_PluralSameType(t *testing.T) {
	out := Summarize([]domain.Product{
		{ProductType: "footwear", Brand: "Nike"},
		{ProductType: "footwear", Brand: "Adidas"},
	}, "")

	if !strings.Contains(out, "I found 2 products that match your search:") {
		t.Errorf("missing plural opener:\n%s", out)
	}
	if strings.Contains(out, "Including ") {
		t.Error("one distinct type must not produce a breakdown line")
	}
}

func TestSummarize_PluralDistinctTypes(t *testing.T) {
	out := Summarize([]domain.Product{
		{ProductType: "footwear"},
		{ProductType: "watch"},
		{ProductType: "footwear"},
	}, "")

	if !strings.Contains(out, "Including 2 footwears, 1 watch.") {
		t.Errorf("missing or wrong breakdown line:\n%s", out)
	}
}

func TestSummarize_AttributeOrderAndOmission(t *testing.T) {
	rating := 4.5
	out := Summarize([]domain.Product{
		{
			ProductType: "footwear",
			Brand:       "Nike",
			Color:       "Red",
			Gender:      "Male",
			AgeGroup:    "Adult",
			Price:       domain.Float(99.99),
			Rating:      &rating,
		},
	}, "")

	want := "1. a footwear from Nike in Red for Male (Adult) priced at $99.99 with a rating of 4.5/5"
	if !strings.Contains(out, want) {
		t.Errorf("detail line mismatch:\nwant fragment: %s\ngot:\n%s", want, out)
	}
}

func TestSummarize_AbsentRatingOmitted(t *testing.T) {
	out := Summarize([]domain.Product{
		{ProductType: "footwear", Brand: "Nike", Price: domain.Float(80)},
	}, "")

	if strings.Contains(out, "rating") {
		t.Errorf("absent rating must be omitted, not defaulted:\n%s", out)
	}
	// 80.0 renders without the trailing .0.
	if !strings.Contains(out, "priced at $80") {
		t.Errorf("price formatting wrong:\n%s", out)
	}
}

func TestSummarize_ClosingPrompt(t *testing.T) {
	out := Summarize([]domain.Product{{ProductType: "footwear"}}, "")
	if !strings.Contains(out, "Would you like to know more about any of these products or try a different search?") {
		t.Errorf("missing closing prompt:\n%s", out)
	}
}

func TestSummarize_RecordsAreIndexedFromOne(t *testing.T) {
	out := Summarize([]domain.Product{
		{ProductType: "footwear"},
		{ProductType: "watch"},
	}, "")

	if !strings.Contains(out, "1. a footwear") || !strings.Contains(out, "2. a watch") {
		t.Errorf("records must be 1-indexed in input order:\n%s", out)
	}
}
