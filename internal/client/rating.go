package client

import (
	"context"
	"net/url"
	"time"
)

// Rating is the typed client for the rating backend.
type Rating struct {
	httpClient
}

// NewRating creates a rating client.
func NewRating(baseURL string, timeout time.Duration) *Rating {
	return &Rating{newHTTPClient(baseURL, timeout)}
}

type ratingResponse struct {
	VendorProductNumber string  `json:"vendor_product_number"`
	Rating              float64 `json:"rating"`
}

// Get looks up the rating for one vendor product number. The backend
// answers a default for unknown ids, so a successful response always
// carries a rating.
func (c *Rating) Get(ctx context.Context, vendorProductNumber string) (float64, error) {
	var resp ratingResponse
	if err := c.getJSON(ctx, "/rating/"+url.PathEscape(vendorProductNumber), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Rating, nil
}
