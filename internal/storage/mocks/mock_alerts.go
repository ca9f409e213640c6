package mocks

import (
	"context"

	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAlertSink является моком для storage.AlertSink интерфейса
type MockAlertSink struct {
	mock.Mock
}

// SaveAlert мок для SaveAlert
func (m *MockAlertSink) SaveAlert(ctx context.Context, alert *models.FraudAlert) (*models.FraudAlert, error) {
	args := m.Called(ctx, alert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if fn, ok := args.Get(0).(func(context.Context, *models.FraudAlert) *models.FraudAlert); ok {
		return fn(ctx, alert), args.Error(1)
	}
	return args.Get(0).(*models.FraudAlert), args.Error(1)
}

// ListAlerts мок для ListAlerts
func (m *MockAlertSink) ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FraudAlert), args.Error(1)
}

// ListAlertsByLevel мок для ListAlertsByLevel
func (m *MockAlertSink) ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FraudAlert), args.Error(1)
}

// DeleteAlert мок для DeleteAlert
func (m *MockAlertSink) DeleteAlert(ctx context.Context, alertID string) (bool, error) {
	args := m.Called(ctx, alertID)
	return args.Bool(0), args.Error(1)
}
