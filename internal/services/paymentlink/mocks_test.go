package paymentlink

import (
	"context"
	"time"

	"officedesk/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Prepend(ctx context.Context, link *models.PaymentLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]models.PaymentLink, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentLink), args.Error(1)
}

func (m *MockRepository) FindByShortID(ctx context.Context, shortID string) (*models.PaymentLink, error) {
	args := m.Called(ctx, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentLink), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, createdBy string) (int64, error) {
	args := m.Called(ctx, createdBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) SaveCheckout(ctx context.Context, checkout *models.GatewayCheckout) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockRepository) FindCheckout(ctx context.Context, paymentLinkID string) (*models.GatewayCheckout, error) {
	args := m.Called(ctx, paymentLinkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GatewayCheckout), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	if fill, ok := args.Get(0).(func(dest interface{})); ok {
		fill(dest)
		return true, args.Error(1)
	}
	return args.Bool(0), args.Error(1)
}

type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(ctx context.Context, link *models.PaymentLink) (*models.GatewayCheckout, error) {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GatewayCheckout), args.Error(1)
}
