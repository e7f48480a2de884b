package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

// FindUsers filters /users by exact email and, when non-empty, password.
func (c *Client) FindUsers(ctx context.Context, email, password string) ([]models.User, error) {
	query := url.Values{"email": {email}}
	if password != "" {
		query.Set("password", password)
	}

	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, user, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, pathf("/users/%s", user.ID), nil, user, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
