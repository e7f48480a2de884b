package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/cache"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

// cachedProducts serves GetProduct from a cache in front of the backend.
// Every other call goes straight through.
type cachedProducts struct {
	ProductAPI
	cache cache.Cache[models.Product]
}

// WithProductCache wraps products with c. A nil cache returns products
// unchanged.
func WithProductCache(products ProductAPI, c cache.Cache[models.Product]) ProductAPI {
	if c == nil {
		return products
	}

	return &cachedProducts{ProductAPI: products, cache: c}
}

func (p *cachedProducts) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	logger := middleware.LoggerFromContext(ctx)

	cached, err := p.cache.Get(ctx, id)
	if err != nil {
		logger.Warn("Product cache read failed", slog.String("productId", id), slog.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	fetched, err := p.ProductAPI.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, id, fetched); err != nil {
		logger.Warn("Product cache write failed", slog.String("productId", id), slog.String("error", err.Error()))
	}

	return fetched, nil
}
