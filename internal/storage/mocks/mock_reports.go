package mocks

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockReportRepository является моком для storage.ReportRepository интерфейса
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) TopCardsByUsage(ctx context.Context, limit int) ([]*models.CardUsage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardUsage), args.Error(1)
}

func (m *MockReportRepository) MonthlyTotalsByType(ctx context.Context, year int, month time.Month) ([]*models.TypeTotal, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TypeTotal), args.Error(1)
}

func (m *MockReportRepository) CardStatusDistribution(ctx context.Context) ([]*models.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StatusCount), args.Error(1)
}

func (m *MockReportRepository) DailySummary(ctx context.Context, since time.Time) ([]*models.DailySummary, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DailySummary), args.Error(1)
}

func (m *MockReportRepository) TopLocations(ctx context.Context, limit int) ([]*models.LocationActivity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LocationActivity), args.Error(1)
}

func (m *MockReportRepository) AverageAmountByCardType(ctx context.Context) ([]*models.CardTypeAverage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardTypeAverage), args.Error(1)
}
