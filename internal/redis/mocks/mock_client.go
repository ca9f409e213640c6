package mocks

import (
	"context"

	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// CacheCardStatus мок для CacheCardStatus
func (m *MockClientInterface) CacheCardStatus(ctx context.Context, cardID string, status models.CardStatus) error {
	args := m.Called(ctx, cardID, status)
	return args.Error(0)
}

// GetCachedCardStatus мок для GetCachedCardStatus
func (m *MockClientInterface) GetCachedCardStatus(ctx context.Context, cardID string) (models.CardStatus, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(models.CardStatus), args.Error(1)
}

// InvalidateCardStatus мок для InvalidateCardStatus
func (m *MockClientInterface) InvalidateCardStatus(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// IncrementAlertStats мок для IncrementAlertStats
func (m *MockClientInterface) IncrementAlertStats(ctx context.Context, level models.AlertLevel) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

// IncrementCardAlertCount мок для IncrementCardAlertCount
func (m *MockClientInterface) IncrementCardAlertCount(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

// GetCardAlertCount мок для GetCardAlertCount
func (m *MockClientInterface) GetCardAlertCount(ctx context.Context, cardID string) (int64, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(int64), args.Error(1)
}

// GetAlertStats мок для GetAlertStats
func (m *MockClientInterface) GetAlertStats(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearCardData мок для ClearCardData
func (m *MockClientInterface) ClearCardData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
