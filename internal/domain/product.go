package domain

import "encoding/json"

// Product is one catalog item as returned by the catalog backend.
// Empty strings and nil pointers both mean the attribute is absent.
// The pipeline holds read-only copies; enrichment adds Rating and
// touches nothing else.
type Product struct {
	VendorProductNumber string   `json:"vendor_product_number,omitempty"`
	ProductType         string   `json:"product_type,omitempty"`
	ProductSubtype      string   `json:"product_subtype,omitempty"`
	Brand               string   `json:"brand,omitempty"`
	Color               string   `json:"color,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	AgeGroup            string   `json:"age_group,omitempty"`
	Price               *float64 `json:"price,omitempty"`
	Rating              *float64 `json:"rating,omitempty"`
}

// WithRating returns a copy of the product with the rating attached.
func (p Product) WithRating(rating float64) Product {
	p.Rating = &rating
	return p
}

// HasRating reports whether the product carries a rating.
func (p Product) HasRating() bool { return p.Rating != nil }

// Float returns a pointer to v. Convenience for optional numeric fields.
func Float(v float64) *float64 { return &v }

// ProductsFromPayload extracts a product list from an envelope payload
// value. In-process the value is already []Product; over the wire it
// arrives as decoded JSON ([]any of maps), so it is round-tripped.
func ProductsFromPayload(v any) []Product {
	switch list := v.(type) {
	case nil:
		return nil
	case []Product:
		return list
	default:
		data, err := json.Marshal(list)
		if err != nil {
			return nil
		}
		var products []Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil
		}
		return products
	}
}
