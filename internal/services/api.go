package service

import (
	"context"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

// The backend resources each service depends on. *client.Client satisfies
// all of them.

type ProductAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ProductsByCategory(ctx context.Context, category models.ProductCategory) ([]models.Product, error)
	SearchProducts(ctx context.Context, q string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
}

type UserAPI interface {
	FindUsers(ctx context.Context, email, password string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)
}

type CartAPI interface {
	FindCartsByUser(ctx context.Context, userID string) ([]models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	DeleteCart(ctx context.Context, id string) error
}

type TransactionAPI interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	PatchTransactionStatus(ctx context.Context, id string, status models.TransactionStatus) (*models.Transaction, error)
}

type ContentAPI interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	GetPlantCareGuide(ctx context.Context, id int) (*models.PlantCareGuide, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
}
