package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Category is a product category as the commerce API returns it
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product stock status values
const (
	StockStatusInStock = "in_stock"
)

// Product is a catalog entry as the commerce API returns it
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	StockStatus  string   `json:"stock_status"`
	Price        float64  `json:"price"`
	DisplayPrice string   `json:"display_price"`
	Images       []string `json:"images"`
}

// InStock reports whether the product can be offered for selection
func (p Product) InStock() bool {
	return strings.EqualFold(p.StockStatus, StockStatusInStock)
}

// FirstImage returns the product's primary image URL, or empty
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// envelope is the commerce API's response wrapper
type envelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Client talks to the commerce API with public/secret key credentials
type Client struct {
	endpoint   string
	publicKey  string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a commerce API client
func NewClient(endpoint, publicKey, secretKey string) *Client {
	return &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		publicKey: publicKey,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListCategories fetches id and name of every category
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	query := url.Values{}
	query.Set("fields", "id,name")

	var categories []Category
	if err := c.get(ctx, "/categories", query, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListProducts fetches the catalog entries of one category with the fixed field set
func (c *Client) ListProducts(ctx context.Context, categoryID int) ([]Product, error) {
	query := url.Values{}
	query.Set("category_id", strconv.Itoa(categoryID))
	query.Set("fields", "id,name,description,stock_status,price,images")

	var products []Product
	if err := c.get(ctx, "/products", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.endpoint + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.publicKey+":"+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("commerce API returned status %d: %s", resp.StatusCode, string(body))
	}

	var wrapper envelope
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return fmt.Errorf("failed to decode commerce response: %w", err)
	}
	if !wrapper.Status {
		return fmt.Errorf("commerce API reported failure")
	}

	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		return fmt.Errorf("failed to decode commerce data: %w", err)
	}
	return nil
}
