// Package retrieval is an optional in-process aid: a TF-IDF index over
// product descriptions used to pull a few relevant records into the
// narrator's context. It is independently replaceable and nothing in
// the query pipeline's guaranteed contract depends on it.
package retrieval

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// vectorizer is a TF-IDF embedder over a fixed corpus. It builds a
// vocabulary and IDF values once and computes sparse-ish dense vectors
// for queries afterwards.
type vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	tokenPattern *regexp.Regexp
}

func newVectorizer(corpus []string) (*vectorizer, error) {
	if len(corpus) == 0 {
		return nil, errors.New("empty corpus")
	}

	v := &vectorizer{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`[\p{L}\d]+`),
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return nil, errors.New("no tokens found in corpus")
	}

	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	return v, nil
}

func (v *vectorizer) tokenize(text string) []string {
	return v.tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// embed computes the TF-IDF vector for a text. Unknown terms are
// ignored; an all-unknown text yields the zero vector.
func (v *vectorizer) embed(text string) []float64 {
	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}
	return vec
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
