package services

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerService управляет клиентами
type CustomerService interface {
	// CreateCustomer создает клиента, email должен быть уникальным
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)

	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

// CardService выпускает карты и управляет их статусом
type CardService interface {
	// IssueCard выпускает карту нужного типа в статусе ACTIVE
	IssueCard(ctx context.Context, req *models.IssueCardRequest) (*models.Card, error)

	IssueDebitCard(ctx context.Context, customerID string, dailyLimit decimal.Decimal) (*models.Card, error)
	IssueCreditCard(ctx context.Context, customerID string, monthlyLimit, interestRate decimal.Decimal) (*models.Card, error)
	IssuePrepaidCard(ctx context.Context, customerID string, initialBalance decimal.Decimal) (*models.Card, error)

	GetCard(ctx context.Context, cardID string) (*models.Card, error)

	// GetCardStatus читает статус из кэша, при промахе - из реестра
	GetCardStatus(ctx context.Context, cardID string) (models.CardStatus, error)

	ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error)

	// ActivateCard возвращает карту в ACTIVE, для уже активной карты - ErrAlreadyActive
	ActivateCard(ctx context.Context, cardID string) (*models.Card, error)
	SuspendCard(ctx context.Context, cardID string) (*models.Card, error)
	BlockCard(ctx context.Context, cardID string) (*models.Card, error)

	// VerifyLimit проверяет сумму по пределу карты, статус карты не учитывается
	VerifyLimit(ctx context.Context, cardID string, amount decimal.Decimal) (bool, error)
}

// OperationService проводит операции и отвечает на запросы к журналу
type OperationService interface {
	// RecordOperation проверяет лимит, записывает операцию и запускает детекцию
	RecordOperation(ctx context.Context, req *models.RecordOperationRequest) (*models.RecordOperationResponse, error)

	GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error)
	ListOperationsByCard(ctx context.Context, cardID string) ([]*models.CardOperation, error)
	FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error)

	// RecentOperations возвращает операции карты за последние 30 дней
	RecentOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error)

	TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error)
}

// FraudService запускает конвейер правил по карте
type FraudService interface {
	// DetectFraud берет блокировку карты и запускает детекцию
	DetectFraud(ctx context.Context, cardID string) (*models.DetectionResult, error)

	// Detect запускает детекцию, блокировку карты должен держать вызывающий
	Detect(ctx context.Context, cardID string) (*models.DetectionResult, error)
}

// AlertService отдает и удаляет оповещения
type AlertService interface {
	ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error)
	ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error)
	ListCriticalAlerts(ctx context.Context) ([]*models.FraudAlert, error)

	// DeleteAlert - ручная очистка, конвейер оповещения не удаляет
	DeleteAlert(ctx context.Context, alertID string) error

	// AlertStats возвращает количество оповещений по уровням
	AlertStats(ctx context.Context) (map[string]int64, error)
}

// ReportService строит отчеты по журналу операций
type ReportService interface {
	TopCards(ctx context.Context) ([]*models.CardUsage, error)
	MonthlyTotals(ctx context.Context, year int, month int) ([]*models.TypeTotal, error)
	StatusDistribution(ctx context.Context) ([]*models.StatusCount, error)
	DailySummary(ctx context.Context, days int) ([]*models.DailySummary, error)
	TopLocations(ctx context.Context) ([]*models.LocationActivity, error)
	AverageByCardType(ctx context.Context) ([]*models.CardTypeAverage, error)
}
