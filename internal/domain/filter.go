package domain

import "strconv"

// SearchFilter is the structured representation of a product search
// intent. Every field is independently optional: an empty string or a
// nil price means "unconstrained". Built once per query and never
// mutated afterwards.
type SearchFilter struct {
	ProductType    string
	ProductSubtype string
	Gender         string
	AgeGroup       string
	Color          string
	Brand          string
	MinPrice       *float64
	MaxPrice       *float64
}

// IsZero reports whether no field is constrained.
func (f SearchFilter) IsZero() bool {
	return f.ProductType == "" && f.ProductSubtype == "" && f.Gender == "" &&
		f.AgeGroup == "" && f.Color == "" && f.Brand == "" &&
		f.MinPrice == nil && f.MaxPrice == nil
}

// Params renders the filter as dispatch parameters, stripping absent
// and empty fields so downstream services only see real constraints.
func (f SearchFilter) Params() map[string]any {
	params := make(map[string]any)
	put := func(key, val string) {
		if val != "" {
			params[key] = val
		}
	}
	put("product_type", f.ProductType)
	put("product_subtype", f.ProductSubtype)
	put("gender", f.Gender)
	put("age_group", f.AgeGroup)
	put("color", f.Color)
	put("brand", f.Brand)
	if f.MinPrice != nil {
		params["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		params["max_price"] = *f.MaxPrice
	}
	return params
}

// StringifyParams converts dispatch parameters to query-string values.
// Empty strings are dropped; numbers keep their shortest representation.
func StringifyParams(params map[string]any) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch val := v.(type) {
		case string:
			if val != "" {
				out[k] = val
			}
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			out[k] = strconv.Itoa(val)
		}
	}
	return out
}
