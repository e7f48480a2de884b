package mocks

import (
	"context"

	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (_m *RateLimitRepository) CheckSignInRateLimit(ctx context.Context, email string) (repository.RateLimitResult, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(repository.RateLimitResult), ret.Error(1)
}
