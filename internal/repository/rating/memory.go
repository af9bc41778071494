package rating

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Memory is an immutable in-memory rating store loaded from CSV.
type Memory struct {
	ratings map[string]float64
}

var _ Store = (*Memory)(nil)

// LoadMemory reads ratings from a CSV file with
// "Vendor Product Number" and "Rating" columns.
func LoadMemory(path string, logger *zap.Logger) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ratings data: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read ratings header: %w", err)
	}

	vendorCol, ratingCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "vendor product number", "vendor_product_number":
			vendorCol = i
		case "rating":
			ratingCol = i
		}
	}
	if vendorCol < 0 || ratingCol < 0 {
		return nil, fmt.Errorf("ratings CSV %s missing vendor/rating columns", path)
	}

	ratings := make(map[string]float64)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ratings row: %w", err)
		}
		if vendorCol >= len(row) || ratingCol >= len(row) {
			continue
		}
		vendor := strings.TrimSpace(row[vendorCol])
		value, err := strconv.ParseFloat(strings.TrimSpace(row[ratingCol]), 64)
		if err != nil {
			logger.Warn("Skipping unparsable rating",
				zap.String("vendor_product_number", vendor),
				zap.String("rating", row[ratingCol]),
			)
			continue
		}
		ratings[vendor] = value
	}

	logger.Info("Loaded ratings", zap.String("path", path), zap.Int("ratings", len(ratings)))
	return &Memory{ratings: ratings}, nil
}

// Get returns the rating for a vendor product number.
func (m *Memory) Get(_ context.Context, vendorProductNumber string) (float64, bool, error) {
	r, ok := m.ratings[vendorProductNumber]
	return r, ok, nil
}

// Count returns the number of loaded ratings.
func (m *Memory) Count(_ context.Context) (int, error) {
	return len(m.ratings), nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
