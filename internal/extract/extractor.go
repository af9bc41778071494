// Package extract turns free-text product queries into structured
// search filters using ordered first-match-wins keyword tables. It
// performs no inference: matching is deterministic substring testing
// on a lower-cased copy of the input, and anything the tables do not
// recognize is left unconstrained.
package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/brightcart/shopchat/internal/domain"
)

// currencyMarker is the only price cue the extractor understands.
const currencyMarker = "$"

// Extract builds a search filter from a free-text query. It is total:
// every input yields a filter, and unmatched categories stay absent.
func Extract(text string) domain.SearchFilter {
	var filter domain.SearchFilter
	lower := strings.ToLower(text)

	filter.MaxPrice = extractPriceCeiling(lower)

	for _, r := range productTypeRules {
		if strings.Contains(lower, r.term) {
			filter.ProductType = r.value
			break
		}
	}

	for _, r := range brandRules {
		if strings.Contains(lower, r.term) {
			filter.Brand = r.value
			break
		}
	}

	for _, r := range colorRules {
		if strings.Contains(lower, r.term) {
			filter.Color = r.value
			break
		}
	}

	for _, g := range genderRules {
		if containsAny(lower, g.terms) {
			filter.Gender = g.value
			break
		}
	}

	for _, r := range ageGroupRules {
		if strings.Contains(lower, r.term) {
			filter.AgeGroup = r.value
			break
		}
	}

	return filter
}

// extractPriceCeiling parses the number immediately after the first
// currency marker when the query also says "under". A tail that does
// not parse as a finite non-negative number leaves the price
// unconstrained rather than raising an error.
func extractPriceCeiling(lower string) *float64 {
	if !strings.Contains(lower, "under") || !strings.Contains(lower, currencyMarker) {
		return nil
	}

	start := strings.Index(lower, currencyMarker) + len(currencyMarker)
	end := strings.IndexByte(lower[start:], ' ')
	if end == -1 {
		end = len(lower) - start
	}

	price, err := strconv.ParseFloat(lower[start:start+end], 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil
	}
	return &price
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
