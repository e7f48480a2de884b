package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/metrics"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	devices   DeviceRegistry
	validator *validator.Validate
}

func NewCartHandler(devices DeviceRegistry) *CartHandler {
	return &CartHandler{devices: devices, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get cart
//	@Description	Returns the device's cart store as last loaded.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSnapshot		"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, _, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}

// RefreshCart godoc
//	@Summary		Reload cart
//	@Description	Reloads the cart from the backend and joins it against the catalog.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSnapshot		"Cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/cart/refresh [post]
func (h *CartHandler) RefreshCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		err := device.Cart.Refresh(r.Context())
		metrics.RecordCartOperation("refresh", err)
		if err != nil {
			logger.Error("Failed to refresh cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}

// AddItem godoc
//	@Summary		Add to cart
//	@Description	Adds a product to the cart, merging with an existing line. A quantity of 0 adds one unit.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and quantity"
//	@Success		200		{object}	models.CartSnapshot		"Cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		502		{object}	response.ErrorResponse	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		err := device.Cart.AddItem(r.Context(), req.ProductID, req.Quantity)
		metrics.RecordCartOperation("add", err)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID))
		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}

// UpdateQuantity godoc
//	@Summary		Set line quantity
//	@Description	Sets the quantity of a cart line. A quantity of 0 removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string						true	"Product ID"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"Quantity"
//	@Success		200			{object}	models.CartSnapshot			"Cart"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse		"Item not found in the cart"
//	@Security		BearerAuth
//	@Router			/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		productID := r.PathValue("productId")

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity input")
			return
		}

		err := device.Cart.UpdateQuantity(r.Context(), productID, *req.Quantity)
		metrics.RecordCartOperation("update", err)
		if err != nil {
			logger.Error("Failed to update quantity", slog.String("productId", productID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}

// RemoveItem godoc
//	@Summary		Remove from cart
//	@Tags			Cart
//	@Produce		json
//	@Param			productId	path		string					true	"Product ID"
//	@Success		200			{object}	models.CartSnapshot		"Cart"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse	"Item not found in the cart"
//	@Security		BearerAuth
//	@Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		productID := r.PathValue("productId")

		err := device.Cart.RemoveFromCart(r.Context(), productID)
		metrics.RecordCartOperation("remove", err)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("productId", productID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}

// ClearCart godoc
//	@Summary		Clear cart
//	@Description	Deletes the user's cart. The next read starts a new, empty one.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartSnapshot		"Empty cart"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		err := device.Cart.ClearCart(r.Context())
		metrics.RecordCartOperation("clear", err)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, device.Cart.Snapshot())
	}
}
