package service

import (
	"context"
	"strings"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService struct {
	products ProductAPI
	policy   *bluemonday.Policy
}

func NewCatalogService(products ProductAPI) *CatalogService {
	return &CatalogService{products: products, policy: bluemonday.StrictPolicy()}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.BadRequestError("Product id is required")
	}

	return s.products.GetProduct(ctx, id)
}

func (s *CatalogService) ByCategory(ctx context.Context, category models.ProductCategory) ([]models.Product, error) {
	return s.products.ProductsByCategory(ctx, category)
}

func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.Product{}, nil
	}

	return s.products.SearchProducts(ctx, q)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        s.policy.Sanitize(req.Name),
		Price:       req.Price,
		Image:       req.Image,
		Description: s.policy.Sanitize(req.Description),
		Category:    req.Category,
		Label:       s.policy.Sanitize(req.Label),
		Details:     req.Details,
		Quantity:    req.Quantity,
	}

	return s.products.CreateProduct(ctx, product)
}
