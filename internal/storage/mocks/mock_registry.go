package mocks

import (
	"context"

	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCardRegistry является моком для storage.CardRegistry интерфейса
type MockCardRegistry struct {
	mock.Mock
}

func (m *MockCardRegistry) SaveCard(ctx context.Context, card *models.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRegistry) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRegistry) SetStatus(ctx context.Context, cardID string, status models.CardStatus) (bool, error) {
	args := m.Called(ctx, cardID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardRegistry) ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

// MockCustomerRepository является моком для storage.CustomerRepository интерфейса
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}
