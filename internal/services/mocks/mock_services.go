package mocks

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCustomerService является моком для services.CustomerService интерфейса
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

// MockCardService является моком для services.CardService интерфейса
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) card(args mock.Arguments) (*models.Card, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) IssueCard(ctx context.Context, req *models.IssueCardRequest) (*models.Card, error) {
	return m.card(m.Called(ctx, req))
}

func (m *MockCardService) IssueDebitCard(ctx context.Context, customerID string, dailyLimit decimal.Decimal) (*models.Card, error) {
	return m.card(m.Called(ctx, customerID, dailyLimit))
}

func (m *MockCardService) IssueCreditCard(ctx context.Context, customerID string, monthlyLimit, interestRate decimal.Decimal) (*models.Card, error) {
	return m.card(m.Called(ctx, customerID, monthlyLimit, interestRate))
}

func (m *MockCardService) IssuePrepaidCard(ctx context.Context, customerID string, initialBalance decimal.Decimal) (*models.Card, error) {
	return m.card(m.Called(ctx, customerID, initialBalance))
}

func (m *MockCardService) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	return m.card(m.Called(ctx, cardID))
}

func (m *MockCardService) GetCardStatus(ctx context.Context, cardID string) (models.CardStatus, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(models.CardStatus), args.Error(1)
}

func (m *MockCardService) ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Card), args.Error(1)
}

func (m *MockCardService) ActivateCard(ctx context.Context, cardID string) (*models.Card, error) {
	return m.card(m.Called(ctx, cardID))
}

func (m *MockCardService) SuspendCard(ctx context.Context, cardID string) (*models.Card, error) {
	return m.card(m.Called(ctx, cardID))
}

func (m *MockCardService) BlockCard(ctx context.Context, cardID string) (*models.Card, error) {
	return m.card(m.Called(ctx, cardID))
}

func (m *MockCardService) VerifyLimit(ctx context.Context, cardID string, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, cardID, amount)
	return args.Bool(0), args.Error(1)
}

// MockOperationService является моком для services.OperationService интерфейса
type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) RecordOperation(ctx context.Context, req *models.RecordOperationRequest) (*models.RecordOperationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecordOperationResponse), args.Error(1)
}

func (m *MockOperationService) GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CardOperation), args.Error(1)
}

func (m *MockOperationService) operations(args mock.Arguments) ([]*models.CardOperation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardOperation), args.Error(1)
}

func (m *MockOperationService) ListOperationsByCard(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	return m.operations(m.Called(ctx, cardID))
}

func (m *MockOperationService) FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error) {
	return m.operations(m.Called(ctx, filter))
}

func (m *MockOperationService) RecentOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	return m.operations(m.Called(ctx, cardID))
}

func (m *MockOperationService) TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockFraudService является моком для services.FraudService интерфейса
type MockFraudService struct {
	mock.Mock
}

func (m *MockFraudService) DetectFraud(ctx context.Context, cardID string) (*models.DetectionResult, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DetectionResult), args.Error(1)
}

func (m *MockFraudService) Detect(ctx context.Context, cardID string) (*models.DetectionResult, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DetectionResult), args.Error(1)
}

// MockAlertService является моком для services.AlertService интерфейса
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) alerts(args mock.Arguments) ([]*models.FraudAlert, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FraudAlert), args.Error(1)
}

func (m *MockAlertService) ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error) {
	return m.alerts(m.Called(ctx, cardID))
}

func (m *MockAlertService) ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error) {
	return m.alerts(m.Called(ctx, level))
}

func (m *MockAlertService) ListCriticalAlerts(ctx context.Context) ([]*models.FraudAlert, error) {
	return m.alerts(m.Called(ctx))
}

func (m *MockAlertService) DeleteAlert(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

func (m *MockAlertService) AlertStats(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockReportService является моком для services.ReportService интерфейса
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) TopCards(ctx context.Context) ([]*models.CardUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardUsage), args.Error(1)
}

func (m *MockReportService) MonthlyTotals(ctx context.Context, year int, month int) ([]*models.TypeTotal, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TypeTotal), args.Error(1)
}

func (m *MockReportService) StatusDistribution(ctx context.Context) ([]*models.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StatusCount), args.Error(1)
}

func (m *MockReportService) DailySummary(ctx context.Context, days int) ([]*models.DailySummary, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DailySummary), args.Error(1)
}

func (m *MockReportService) TopLocations(ctx context.Context) ([]*models.LocationActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LocationActivity), args.Error(1)
}

func (m *MockReportService) AverageByCardType(ctx context.Context) ([]*models.CardTypeAverage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CardTypeAverage), args.Error(1)
}
