// internal/api/products.go
package api

import (
	"context"
	"net/http"

	"github.com/javajoker/dukan-admin/internal/models"
)

// Product endpoints are called without auth headers; the shop API decides on
// its own whether to answer 401.

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.Do(ctx, http.MethodGet, "/api/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *models.Product) error {
	return c.Do(ctx, http.MethodPost, "/api/products", product, nil, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, product *models.Product) error {
	return c.Do(ctx, http.MethodPut, "/api/products/"+escape(id), product, nil, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/products/"+escape(id), nil, nil, nil)
}
