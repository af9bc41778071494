package retrieval

import (
	"fmt"
	"strings"

	"github.com/brightcart/shopchat/internal/domain"
)

// ProductIndex holds TF-IDF vectors for a product catalog and answers
// nearest-neighbour queries over it.
type ProductIndex struct {
	vectorizer *vectorizer
	vectors    [][]float64
	products   []domain.Product
}

// NewProductIndex builds an index over the given products. The catalog
// is treated as immutable after construction.
func NewProductIndex(products []domain.Product) (*ProductIndex, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("build product index: no products")
	}

	corpus := make([]string, len(products))
	for i, p := range products {
		corpus[i] = describe(p)
	}

	v, err := newVectorizer(corpus)
	if err != nil {
		return nil, fmt.Errorf("build product index: %w", err)
	}

	vectors := make([][]float64, len(corpus))
	for i, text := range corpus {
		vectors[i] = v.embed(text)
	}

	return &ProductIndex{vectorizer: v, vectors: vectors, products: products}, nil
}

// Size reports the number of indexed products.
func (ix *ProductIndex) Size() int { return len(ix.products) }

// TopK returns up to k products most similar to the query, best first.
// Products with zero similarity are excluded.
func (ix *ProductIndex) TopK(query string, k int) []domain.Product {
	if k <= 0 {
		return nil
	}

	qv := ix.vectorizer.embed(query)

	type scored struct {
		idx   int
		score float64
	}
	candidates := make([]scored, 0, len(ix.vectors))
	for i, vec := range ix.vectors {
		if s := cosine(qv, vec); s > 0 {
			candidates = append(candidates, scored{idx: i, score: s})
		}
	}

	// Stable on the original order so equal scores keep catalog order.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score > candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]domain.Product, 0, k)
	for _, c := range candidates[:k] {
		out = append(out, ix.products[c.idx])
	}
	return out
}

// Context renders the top-k matches as a short plain-text block that
// can be prepended to a generation prompt. An empty string means no
// relevant products were found.
func (ix *ProductIndex) Context(query string, k int) string {
	matches := ix.TopK(query, k)
	if len(matches) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Relevant products:\n")
	for i, p := range matches {
		fmt.Fprintf(&b, "%d. %s", i+1, summaryLine(p))
		if i < len(matches)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func describe(p domain.Product) string {
	parts := make([]string, 0, 7)
	for _, s := range []string{p.ProductType, p.ProductSubtype, p.Brand, p.Color, p.Gender, p.AgeGroup} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func summaryLine(p domain.Product) string {
	parts := make([]string, 0, 3)
	if p.ProductType != "" {
		parts = append(parts, p.ProductType)
	}
	if p.Brand != "" {
		parts = append(parts, p.Brand)
	}
	if p.Color != "" {
		parts = append(parts, p.Color)
	}
	if len(parts) == 0 {
		return p.VendorProductNumber
	}
	return strings.Join(parts, " - ")
}
