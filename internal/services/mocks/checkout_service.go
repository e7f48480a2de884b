package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) Quote(lines []models.CartLine, method models.DeliveryMethod) *models.Quote {
	ret := _m.Called(lines, method)

	if v := ret.Get(0); v != nil {
		return v.(*models.Quote)
	}

	return nil
}

func (_m *CheckoutService) PlaceOrder(ctx context.Context, user *models.User, cart *service.Cart, req *models.CheckoutRequest) (*models.Transaction, error) {
	ret := _m.Called(ctx, user, cart, req)

	var tx *models.Transaction
	if v := ret.Get(0); v != nil {
		tx = v.(*models.Transaction)
	}

	return tx, ret.Error(1)
}

func (_m *CheckoutService) History(ctx context.Context, userID string) ([]models.Transaction, error) {
	ret := _m.Called(ctx, userID)

	var txs []models.Transaction
	if v := ret.Get(0); v != nil {
		txs = v.([]models.Transaction)
	}

	return txs, ret.Error(1)
}

func (_m *CheckoutService) UpdateStatus(ctx context.Context, userID, id string, status models.TransactionStatus) (*models.Transaction, error) {
	ret := _m.Called(ctx, userID, id, status)

	var tx *models.Transaction
	if v := ret.Get(0); v != nil {
		tx = v.(*models.Transaction)
	}

	return tx, ret.Error(1)
}

var _ service.CheckoutService = (*CheckoutService)(nil)
