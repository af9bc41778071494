package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/brightcart/shopchat/internal/domain"
)

const testCSV = `Vendor Product Number,Product type,Product subtype,Brand,Color,Gender,Age Group,Price
a-1,footwear,sneakers,Nike,Red,Male,Adult,80
a-2,footwear,boots,Adidas,Black,Female,Adult,120.50
a-3,watch,smartwatch,Apple,Grey,Unisex,Adult,399
a-4,footwear,sandals,Nike,Blue,Kids,Youth,not-a-price
,bag,tote,Coach,Brown,Female,Adult,95
`

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func TestLoad(t *testing.T) {
	store := loadTestStore(t)

	if store.Len() != 5 {
		t.Fatalf("expected 5 products, got %d", store.Len())
	}

	all := store.Filter(domain.SearchFilter{})
	if all[3].Price != nil {
		t.Error("unparsable price should load as absent")
	}
	if all[4].VendorProductNumber == "" {
		t.Error("row without vendor product number should get a generated one")
	}
}

func TestFilter(t *testing.T) {
	store := loadTestStore(t)

	tests := []struct {
		name   string
		filter domain.SearchFilter
		want   []string // vendor product numbers, in catalog order
	}{
		{"unconstrained", domain.SearchFilter{}, []string{"a-1", "a-2", "a-3", "a-4", ""}},
		{"by brand case-insensitive", domain.SearchFilter{Brand: "nike"}, []string{"a-1", "a-4"}},
		{"substring match", domain.SearchFilter{ProductSubtype: "sneak"}, []string{"a-1"}},
		{"max price", domain.SearchFilter{MaxPrice: domain.Float(100)}, []string{"a-1", ""}},
		{"min and max price", domain.SearchFilter{MinPrice: domain.Float(100), MaxPrice: domain.Float(400)}, []string{"a-2", "a-3"}},
		{
			"combined fields",
			domain.SearchFilter{ProductType: "footwear", Gender: "Male", MaxPrice: domain.Float(100)},
			[]string{"a-1"},
		},
		{"no match", domain.SearchFilter{Brand: "Sony"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Filter(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d products, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				// The generated id is random; an empty want matches any.
				if tt.want[i] != "" && p.VendorProductNumber != tt.want[i] {
					t.Errorf("product %d = %q, want %q", i, p.VendorProductNumber, tt.want[i])
				}
			}
		})
	}
}

func TestFilter_PricelessRecordFailsPriceConstraint(t *testing.T) {
	store := loadTestStore(t)

	got := store.Filter(domain.SearchFilter{Brand: "Nike", MaxPrice: domain.Float(1000)})
	if len(got) != 1 || got[0].VendorProductNumber != "a-1" {
		t.Errorf("record without price must not match a price constraint, got %v", got)
	}
}

func TestDistinct(t *testing.T) {
	store := loadTestStore(t)

	brands := store.Distinct(AttrBrand)
	want := []string{"Nike", "Adidas", "Apple", "Coach"}
	if len(brands) != len(want) {
		t.Fatalf("brands = %v, want %v", brands, want)
	}
	for i := range want {
		if brands[i] != want[i] {
			t.Errorf("brands[%d] = %q, want %q (first-seen order)", i, brands[i], want[i])
		}
	}

	types := store.Distinct(AttrProductType)
	if len(types) != 3 {
		t.Errorf("expected 3 distinct types, got %v", types)
	}
}
