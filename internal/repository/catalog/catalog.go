// Package catalog holds the product data provider: a CSV-backed record
// set loaded once at startup and immutable afterwards. Construction is
// explicit and the store is injected where needed, never a process
// global.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
)

// Attribute names a single enumerable product attribute.
type Attribute string

// Enumerable attributes exposed by the listing endpoints.
const (
	AttrProductType    Attribute = "product_type"
	AttrProductSubtype Attribute = "product_subtype"
	AttrBrand          Attribute = "brand"
	AttrColor          Attribute = "color"
	AttrGender         Attribute = "gender"
	AttrAgeGroup       Attribute = "age_group"
)

// Store is the immutable in-memory product set.
type Store struct {
	products []domain.Product
}

// Load reads products from a CSV file. Rows with an unparsable price
// keep the record but drop the price; rows without a vendor product
// number get a generated one so every loaded record is addressable by
// the rating backend.
func Load(path string, logger *zap.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog data: %w", err)
	}
	defer f.Close()

	products, err := parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("parse catalog data %s: %w", path, err)
	}

	logger.Info("Loaded product catalog",
		zap.String("path", path),
		zap.Int("products", len(products)),
	)
	return &Store{products: products}, nil
}

// column indexes resolved from the CSV header.
type columns struct {
	vendorNumber int
	productType  int
	subtype      int
	brand        int
	color        int
	gender       int
	ageGroup     int
	price        int
}

func parse(r io.Reader, logger *zap.Logger) ([]domain.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := resolveColumns(header)

	var products []domain.Product
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		p := domain.Product{
			VendorProductNumber: cell(row, cols.vendorNumber),
			ProductType:         cell(row, cols.productType),
			ProductSubtype:      cell(row, cols.subtype),
			Brand:               cell(row, cols.brand),
			Color:               cell(row, cols.color),
			Gender:              cell(row, cols.gender),
			AgeGroup:            cell(row, cols.ageGroup),
		}

		if raw := cell(row, cols.price); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
				logger.Warn("Unparsable price, keeping record without one",
					zap.String("vendor_product_number", p.VendorProductNumber),
					zap.String("price", raw),
				)
			} else {
				p.Price = &price
			}
		}

		if p.VendorProductNumber == "" {
			p.VendorProductNumber = uuid.NewString()
			logger.Warn("Row without vendor product number, assigned one",
				zap.String("vendor_product_number", p.VendorProductNumber),
			)
		}

		products = append(products, p)
	}
	return products, nil
}

func resolveColumns(header []string) columns {
	cols := columns{-1, -1, -1, -1, -1, -1, -1, -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "vendor product number", "vendor_product_number":
			cols.vendorNumber = i
		case "product type", "product_type":
			cols.productType = i
		case "product subtype", "product_subtype":
			cols.subtype = i
		case "brand":
			cols.brand = i
		case "color":
			cols.color = i
		case "gender":
			cols.gender = i
		case "age group", "age_group":
			cols.ageGroup = i
		case "price":
			cols.price = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Len returns the number of loaded products.
func (s *Store) Len() int { return len(s.products) }

// Filter returns the products matching every populated field of the
// filter. String fields match by case-insensitive substring; prices
// match by range. A record without a price never matches a price
// constraint.
func (s *Store) Filter(f domain.SearchFilter) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if !matchStr(p.ProductType, f.ProductType) ||
			!matchStr(p.ProductSubtype, f.ProductSubtype) ||
			!matchStr(p.Brand, f.Brand) ||
			!matchStr(p.Color, f.Color) ||
			!matchStr(p.Gender, f.Gender) ||
			!matchStr(p.AgeGroup, f.AgeGroup) {
			continue
		}
		if f.MinPrice != nil && (p.Price == nil || *p.Price < *f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Distinct returns the distinct non-empty values of one attribute in
// first-seen order.
func (s *Store) Distinct(attr Attribute) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		v := attributeValue(p, attr)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func attributeValue(p domain.Product, attr Attribute) string {
	switch attr {
	case AttrProductType:
		return p.ProductType
	case AttrProductSubtype:
		return p.ProductSubtype
	case AttrBrand:
		return p.Brand
	case AttrColor:
		return p.Color
	case AttrGender:
		return p.Gender
	case AttrAgeGroup:
		return p.AgeGroup
	default:
		return ""
	}
}

// matchStr reports whether value satisfies a case-insensitive substring
// constraint. An empty constraint always matches; an empty value never
// matches a populated constraint.
func matchStr(value, constraint string) bool {
	if constraint == "" {
		return true
	}
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(constraint))
}
