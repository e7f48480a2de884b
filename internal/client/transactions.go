package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

func (c *Client) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	var created models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, tx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", url.Values{"userId": {userID}}, nil, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.do(ctx, http.MethodGet, pathf("/transactions/%s", id), nil, nil, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

func (c *Client) PatchTransactionStatus(ctx context.Context, id string, status models.TransactionStatus) (*models.Transaction, error) {
	var patched models.Transaction
	body := map[string]models.TransactionStatus{"status": status}
	if err := c.do(ctx, http.MethodPatch, pathf("/transactions/%s", id), nil, body, &patched); err != nil {
		return nil, err
	}

	return &patched, nil
}
