// Package synthesize turns an enriched product list into a
// natural-language summary by deterministic text assembly. No model
// runs here; every clause comes straight from record attributes, and
// absent attributes are simply omitted, never defaulted.
package synthesize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brightcart/shopchat/internal/domain"
)

// NoMatchesMessage is the fixed answer for an empty result set.
const NoMatchesMessage = "I couldn't find any products matching your criteria. Would you like to try a different search?"

const closingPrompt = "Would you like to know more about any of these products or try a different search?"

// Summarize renders a product list as a readable answer. The query is
// part of the contract but does not influence the deterministic
// output.
func Summarize(products []domain.Product, _ string) string {
	if len(products) == 0 {
		return NoMatchesMessage
	}

	var parts []string

	if len(products) == 1 {
		parts = append(parts, "I found one product that matches your search:")
	} else {
		parts = append(parts, fmt.Sprintf("I found %d products that match your search:", len(products)))
	}

	if line := typeBreakdown(products); line != "" {
		parts = append(parts, line)
	}

	parts = append(parts, "\nHere are the details:")
	for i, p := range products {
		parts = append(parts, fmt.Sprintf("\n%d. %s", i+1, describe(p)))
	}

	parts = append(parts, "\n"+closingPrompt)
	return strings.Join(parts, "\n")
}

// typeBreakdown emits a count-by-type line when the results span more
// than one distinct product type. Types keep first-seen order.
func typeBreakdown(products []domain.Product) string {
	counts := make(map[string]int)
	var order []string
	for _, p := range products {
		t := p.ProductType
		if t == "" {
			t = "Unknown"
		}
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	if len(order) <= 1 {
		return ""
	}

	entries := make([]string, len(order))
	for i, t := range order {
		label := t
		if counts[t] > 1 {
			label += "s"
		}
		entries[i] = fmt.Sprintf("%d %s", counts[t], label)
	}
	return "Including " + strings.Join(entries, ", ") + "."
}

// describe concatenates the present attributes of one record in fixed
// order, each with its fixed connecting preposition.
func describe(p domain.Product) string {
	var features []string

	if p.ProductType != "" {
		features = append(features, "a "+p.ProductType)
	}
	if p.Brand != "" {
		features = append(features, "from "+p.Brand)
	}
	if p.Color != "" {
		features = append(features, "in "+p.Color)
	}
	if p.Gender != "" {
		features = append(features, "for "+p.Gender)
	}
	if p.AgeGroup != "" {
		features = append(features, "("+p.AgeGroup+")")
	}
	if p.Price != nil {
		features = append(features, "priced at $"+formatNumber(*p.Price))
	}
	if p.Rating != nil {
		features = append(features, "with a rating of "+formatNumber(*p.Rating)+"/5")
	}

	return strings.Join(features, " ")
}

// formatNumber renders a number without a trailing ".0".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
