package cache

import (
	"context"
)

// Cache holds JSON copies of T keyed by id. Get returns nil, nil on a miss.
type Cache[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Set(ctx context.Context, id string, value *T) error
}

const ProductKeyPrefix = "product"
