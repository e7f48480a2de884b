package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	devices   DeviceRegistry
	checkout  service.CheckoutService
	validator *validator.Validate
}

func NewCheckoutHandler(devices DeviceRegistry, checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{devices: devices, checkout: checkout, validator: validator.New()}
}

// Quote godoc
//	@Summary		Price the cart
//	@Description	Returns subtotal, delivery fee and total for the current cart. Delivery defaults to fast.
//	@Tags			Checkout
//	@Produce		json
//	@Param			deliveryMethod	query		string					false	"Delivery method"	Enums(fast, cod)
//	@Success		200				{object}	models.Quote			"Price breakdown"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Failure		401				{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/checkout/quote [get]
func (h *CheckoutHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		req := models.QuoteRequest{DeliveryMethod: models.DeliveryMethod(r.URL.Query().Get("deliveryMethod"))}
		if err := h.validator.Struct(&req); err != nil {
			logger.Warn("Invalid delivery method", slog.String("deliveryMethod", string(req.DeliveryMethod)))
			response.Error(w, errors.ValidationError("Delivery method must be one of [fast cod]"))
			return
		}

		response.Success(w, http.StatusOK, h.checkout.Quote(device.Cart.Lines(), req.DeliveryMethod))
	}
}

// PlaceOrder godoc
//	@Summary		Place order
//	@Description	Snapshots the cart into a pending transaction and clears the cart.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Customer and delivery details"
//	@Success		201			{object}	models.Transaction		"Placed order"
//	@Failure		400			{object}	response.ErrorResponse	"Missing fields or empty cart"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, user, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		tx, err := h.checkout.PlaceOrder(r.Context(), user, device.Cart, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully", slog.String("transactionId", tx.ID))
		response.Success(w, http.StatusCreated, tx)
	}
}

// ListTransactions godoc
//	@Summary		Transaction history
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{array}		models.Transaction		"Transactions"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/transactions [get]
func (h *CheckoutHandler) ListTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, user, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		transactions, err := h.checkout.History(r.Context(), user.ID)
		if err != nil {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, transactions)
	}
}

// UpdateTransactionStatus godoc
//	@Summary		Update transaction status
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Transaction ID"
//	@Param			status	body		models.UpdateTransactionStatusRequest	true	"New status"
//	@Success		200		{object}	models.Transaction						"Updated transaction"
//	@Failure		400		{object}	response.ErrorResponse					"Validation error"
//	@Failure		401		{object}	response.ErrorResponse					"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse					"Transaction not found"
//	@Security		BearerAuth
//	@Router			/transactions/{id}/status [patch]
func (h *CheckoutHandler) UpdateTransactionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		_, user, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		id := r.PathValue("id")
		logger = logger.With(slog.String("transactionId", id))

		var req models.UpdateTransactionStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid status input")
			return
		}

		tx, err := h.checkout.UpdateStatus(r.Context(), user.ID, id, req.Status)
		if err != nil {
			logger.Error("Failed to update transaction status", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Transaction status updated", slog.String("status", string(tx.Status)))
		response.Success(w, http.StatusOK, tx)
	}
}
