package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/stretchr/testify/mock"
)

type UserAPI struct {
	mock.Mock
}

func (_m *UserAPI) FindUsers(ctx context.Context, email, password string) ([]models.User, error) {
	ret := _m.Called(ctx, email, password)

	var users []models.User
	if v := ret.Get(0); v != nil {
		users = v.([]models.User)
	}

	return users, ret.Error(1)
}

func (_m *UserAPI) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	ret := _m.Called(ctx, user)

	var created *models.User
	if v := ret.Get(0); v != nil {
		created = v.(*models.User)
	}

	return created, ret.Error(1)
}

func (_m *UserAPI) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	ret := _m.Called(ctx, user)

	var updated *models.User
	if v := ret.Get(0); v != nil {
		updated = v.(*models.User)
	}

	return updated, ret.Error(1)
}
