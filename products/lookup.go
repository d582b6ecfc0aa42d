// Package products, external lookup client for the Open Food Facts API.
package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/config"
)

// Lookup provides best-effort product metadata for a barcode not present in
// the local cache.
type Lookup interface {
	Fetch(ctx context.Context, barcode string) (*ProductInfo, error)
}

// offResponse mirrors the relevant slice of the Open Food Facts payload:
// a status flag and, when present, a product object.
type offResponse struct {
	Status  int `json:"status"`
	Product *struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		Categories  string `json:"categories"`
	} `json:"product"`
}

// OpenFoodFactsClient talks to the public Open Food Facts product database.
type OpenFoodFactsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenFoodFactsClient creates a lookup client. The HTTP timeout bounds
// the otherwise unbounded network call; a timeout is reported like any other
// transport failure.
func NewOpenFoodFactsClient(cfg config.LookupConfig) *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Fetch queries the product database for a barcode.
// A well-formed "not found" answer is returned as a NotFoundError; any
// non-200 response or malformed body is an ExternalServiceError. Callers
// (the resolver) convert both into populated results, never into crashes.
func (c *OpenFoodFactsClient) Fetch(ctx context.Context, barcode string) (*ProductInfo, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.NewExternalServiceError("failed to build product lookup request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewExternalServiceError("product lookup request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewExternalServiceError(
			fmt.Sprintf("product lookup returned status %d", resp.StatusCode), nil)
	}

	var body offResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperror.NewExternalServiceError("failed to decode product lookup response", err)
	}

	if body.Status != 1 || body.Product == nil {
		return nil, apperror.NewNotFoundError("product not found in database", nil)
	}

	info := &ProductInfo{
		Name:           body.Product.ProductName,
		IsKnownProduct: false,
	}
	if info.Name == "" {
		info.Name = unknownProductName
	}
	if body.Product.Brands != "" {
		brand := body.Product.Brands
		info.Brand = &brand
	}
	if body.Product.Categories != "" {
		category := body.Product.Categories
		info.Category = &category
	}
	return info, nil
}
