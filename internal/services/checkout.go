package service

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/config"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/google/uuid"
)

// OrderNotifier is told about every order once it is stored. Failures are
// logged and never fail the order.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, tx *models.Transaction) error
}

type CheckoutService interface {
	Quote(lines []models.CartLine, method models.DeliveryMethod) *models.Quote
	PlaceOrder(ctx context.Context, user *models.User, cart *Cart, req *models.CheckoutRequest) (*models.Transaction, error)
	History(ctx context.Context, userID string) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, userID, id string, status models.TransactionStatus) (*models.Transaction, error)
}

type checkoutService struct {
	transactions TransactionAPI
	fees         config.Checkout
	notifiers    []OrderNotifier
	now          func() time.Time
}

func NewCheckoutService(transactions TransactionAPI, fees config.Checkout, notifiers ...OrderNotifier) CheckoutService {
	return &checkoutService{
		transactions: transactions,
		fees:         fees,
		notifiers:    notifiers,
		now:          time.Now,
	}
}

func (s *checkoutService) deliveryFee(method models.DeliveryMethod) int64 {
	if method == models.DeliveryFast {
		return s.fees.FastDeliveryFee
	}

	return s.fees.CODDeliveryFee
}

func (s *checkoutService) Quote(lines []models.CartLine, method models.DeliveryMethod) *models.Quote {

	if method == "" {
		method = models.DeliveryFast
	}

	subtotal := linesTotal(lines)
	fee := s.deliveryFee(method)

	total, ok := utils.AddAmounts(subtotal, fee)
	if !ok {
		total = math.MaxInt64
	}

	return &models.Quote{
		Subtotal:             subtotal,
		DeliveryMethod:       method,
		DeliveryFee:          fee,
		Total:                total,
		FormattedSubtotal:    utils.FormatVND(subtotal),
		FormattedDeliveryFee: utils.FormatVND(fee),
		FormattedTotal:       utils.FormatVND(total),
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, user *models.User, cart *Cart, req *models.CheckoutRequest) (*models.Transaction, error) {

	logger := middleware.LoggerFromContext(ctx)

	if user == nil {
		return nil, errors.UnauthorizedError("User not authenticated")
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	address := strings.TrimSpace(req.Address)
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || address == "" || phone == "" {
		return nil, errors.ValidationError("Please fill in all required information")
	}

	delivery := req.DeliveryMethod
	if delivery == "" {
		delivery = models.DeliveryFast
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = models.PaymentVisa
	}

	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, errors.ValidationError("Cart is empty")
	}

	subtotal, ok := checkedLinesTotal(lines)
	if ok {
		_, ok = utils.AddAmounts(subtotal, s.deliveryFee(delivery))
	}

	if !ok {
		return nil, errors.ValidationError("Cart total is too large")
	}

	quote := s.Quote(lines, delivery)

	tx := &models.Transaction{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Items:           lines,
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		TotalAmount:     quote.Total,
		FormattedTotal:  quote.FormattedTotal,
		Customer:        models.Customer{Name: name, Email: email, Phone: phone},
		ShippingAddress: address,
		DeliveryMethod:  delivery,
		PaymentMethod:   payment,
		Status:          models.TransactionStatusPending,
		Date:            s.now().UTC(),
	}

	created, err := s.transactions.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	logger.Info("Order placed", slog.String("transactionId", created.ID), slog.Int64("total", created.TotalAmount))

	if err := cart.ClearCart(ctx); err != nil {
		logger.Error("Failed to clear cart after order", slog.String("transactionId", created.ID), slog.String("error", err.Error()))
	}

	for _, n := range s.notifiers {
		if err := n.OrderPlaced(ctx, created); err != nil {
			logger.Warn("Order notification failed", slog.String("transactionId", created.ID), slog.String("error", err.Error()))
		}
	}

	return created, nil
}

func (s *checkoutService) History(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.transactions.ListTransactions(ctx, userID)
}

func (s *checkoutService) UpdateStatus(ctx context.Context, userID, id string, status models.TransactionStatus) (*models.Transaction, error) {

	switch status {
	case models.TransactionStatusPending, models.TransactionStatusSuccess, models.TransactionStatusCancelled:
	default:
		return nil, errors.ValidationError("Invalid transaction status")
	}

	tx, err := s.transactions.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.UserID != userID {
		return nil, errors.NotFoundError("Transaction not found")
	}

	return s.transactions.PatchTransactionStatus(ctx, id, status)
}
