package mocks

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOperationLedger является моком для storage.OperationLedger интерфейса
type MockOperationLedger struct {
	mock.Mock
}

func (m *MockOperationLedger) AppendOperation(ctx context.Context, op *models.CardOperation) (*models.CardOperation, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *models.CardOperation) *models.CardOperation); ok {
		return fn(ctx, op), args.Error(1)
	}
	return args.Get(0).(*models.CardOperation), args.Error(1)
}

func (m *MockOperationLedger) GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardOperation), args.Error(1)
}

func (m *MockOperationLedger) ListOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardOperation), args.Error(1)
}

func (m *MockOperationLedger) ListOperationsSince(ctx context.Context, cardID string, since time.Time) ([]*models.CardOperation, error) {
	args := m.Called(ctx, cardID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardOperation), args.Error(1)
}

func (m *MockOperationLedger) FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardOperation), args.Error(1)
}

func (m *MockOperationLedger) TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
