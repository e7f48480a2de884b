package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

func (c *Client) FindCartsByUser(ctx context.Context, userID string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := c.do(ctx, http.MethodGet, "/carts", url.Values{"userId": {userID}}, nil, &carts); err != nil {
		return nil, err
	}

	return carts, nil
}

func (c *Client) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	var created models.Cart
	if err := c.do(ctx, http.MethodPost, "/carts", nil, cart, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateCart overwrites the whole cart resource.
func (c *Client) UpdateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	var updated models.Cart
	if err := c.do(ctx, http.MethodPut, pathf("/carts/%s", cart.ID), nil, cart, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteCart(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathf("/carts/%s", id), nil, nil, nil)
}
