package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &products); err != nil {
		return nil, err
	}

	return models.NormalizeProducts(products), nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, pathf("/products/%s", id), nil, nil, &product); err != nil {
		return nil, err
	}

	normalized := models.NormalizeProduct(product)
	return &normalized, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category models.ProductCategory) ([]models.Product, error) {
	var products []models.Product
	query := url.Values{"category": {string(category)}}
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &products); err != nil {
		return nil, err
	}

	return models.NormalizeProducts(products), nil
}

// SearchProducts uses the backend's full-text q parameter.
func (c *Client) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", url.Values{"q": {q}}, nil, &products); err != nil {
		return nil, err
	}

	return models.NormalizeProducts(products), nil
}

func (c *Client) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, product, &created); err != nil {
		return nil, err
	}

	normalized := models.NormalizeProduct(created)
	return &normalized, nil
}
