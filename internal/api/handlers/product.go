package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	catalog   *service.CatalogService
	validator *validator.Validate
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists the catalog, optionally filtered by category.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string					false	"Category"	Enums(cayTrong, chauCayTrong, phuKien, comboChamSoc)
//	@Success		200			{array}		models.Product			"Products"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var (
			products []models.Product
			err      error
		)

		if category := r.URL.Query().Get("category"); category != "" {
			products, err = h.catalog.ByCategory(r.Context(), models.ProductCategory(category))
		} else {
			products, err = h.catalog.ListProducts(r.Context())
		}

		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		id := r.PathValue("id")

		product, err := h.catalog.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Description	Adds a product to the catalog from the admin screen.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")
			return
		}

		product, err := h.catalog.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}
