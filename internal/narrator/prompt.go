package narrator

import (
	"fmt"
	"strings"

	"github.com/brightcart/shopchat/internal/domain"
)

const systemPrompt = "You are a helpful shopping assistant. " +
	"Answer the customer's question using only the product information provided. " +
	"Be concise and friendly, and do not invent products or attributes."

// buildPrompt renders the generation prompt for a query: the draft
// summary of the matched products, optional retrieval context, and the
// customer's original question.
func buildPrompt(query, draft, retrievalContext string, products []domain.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer question: %s\n\n", query)

	if len(products) > 0 {
		b.WriteString("Matched products:\n")
		for i, p := range products {
			fmt.Fprintf(&b, "%d. %s\n", i+1, productLine(p))
		}
		b.WriteByte('\n')
	}

	if retrievalContext != "" {
		b.WriteString(retrievalContext)
		b.WriteString("\n\n")
	}

	b.WriteString("Draft answer:\n")
	b.WriteString(draft)
	b.WriteString("\n\nRewrite the draft answer in a natural, conversational tone. Keep every fact intact.")

	return b.String()
}

func productLine(p domain.Product) string {
	parts := make([]string, 0, 8)
	for _, s := range []string{p.ProductType, p.ProductSubtype, p.Brand, p.Color, p.Gender, p.AgeGroup} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.Price != nil {
		parts = append(parts, fmt.Sprintf("$%v", *p.Price))
	}
	if p.Rating != nil {
		parts = append(parts, fmt.Sprintf("rated %v/5", *p.Rating))
	}
	if len(parts) == 0 {
		return p.VendorProductNumber
	}
	return strings.Join(parts, ", ")
}
