package storage

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

// Соглашение для всех хранилищ: отсутствующая запись возвращается как nil, nil.

// CardRegistry хранит карты и их текущий статус
type CardRegistry interface {
	// SaveCard сохраняет новую карту
	SaveCard(ctx context.Context, card *models.Card) error

	// GetCard получает карту по id
	GetCard(ctx context.Context, cardID string) (*models.Card, error)

	// SetStatus меняет статус карты, false - если карта не найдена
	SetStatus(ctx context.Context, cardID string, status models.CardStatus) (bool, error)

	// ListCardsByCustomer получает карты клиента
	ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error)
}

// OperationLedger - журнал операций, только добавление
type OperationLedger interface {
	// AppendOperation добавляет операцию и назначает ей id, если он не задан
	AppendOperation(ctx context.Context, op *models.CardOperation) (*models.CardOperation, error)

	// GetOperation получает операцию по id
	GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error)

	// ListOperations получает историю карты, новые операции первыми
	ListOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error)

	// ListOperationsSince получает историю карты начиная с момента since, новые первыми
	ListOperationsSince(ctx context.Context, cardID string, since time.Time) ([]*models.CardOperation, error)

	// FindOperations выполняет выборку по фильтру, новые первыми
	FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error)

	// TotalAmount считает сумму операций карты за период [from, to]
	TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error)
}

// AlertSink сохраняет и отдает оповещения о мошенничестве
type AlertSink interface {
	// SaveAlert сохраняет оповещение и возвращает его с назначенным id
	SaveAlert(ctx context.Context, alert *models.FraudAlert) (*models.FraudAlert, error)

	// ListAlerts получает оповещения карты, для пустого cardID - все оповещения
	ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error)

	// ListAlertsByLevel получает оповещения заданного уровня
	ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error)

	// DeleteAlert удаляет оповещение, false - если оно не найдено
	DeleteAlert(ctx context.Context, alertID string) (bool, error)
}

// CustomerRepository хранит клиентов
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomer(ctx context.Context, customerID string) (*models.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

// ReportRepository строит агрегированные отчеты по журналу и реестру карт
type ReportRepository interface {
	TopCardsByUsage(ctx context.Context, limit int) ([]*models.CardUsage, error)
	MonthlyTotalsByType(ctx context.Context, year int, month time.Month) ([]*models.TypeTotal, error)
	CardStatusDistribution(ctx context.Context) ([]*models.StatusCount, error)
	DailySummary(ctx context.Context, since time.Time) ([]*models.DailySummary, error)
	TopLocations(ctx context.Context, limit int) ([]*models.LocationActivity, error)
	AverageAmountByCardType(ctx context.Context) ([]*models.CardTypeAverage, error)
}

// Cleaner очищает все данные хранилища
type Cleaner interface {
	ClearAll(ctx context.Context) error
}

// Repositories группирует все хранилища одного подключения
type Repositories struct {
	Cards      CardRegistry
	Operations OperationLedger
	Alerts     AlertSink
	Customers  CustomerRepository
	Reports    ReportRepository
	Cleaner    Cleaner
}
