package rest

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"card-fraud-system/internal/generator"
	"card-fraud-system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// Services - сервисы, доступные обработчикам. Незаданные сервисы означают,
// что соответствующие маршруты в процессе не регистрируются.
type Services struct {
	Customers  services.CustomerService
	Cards      services.CardService
	Operations services.OperationService
	Fraud      services.FraudService
	Alerts     services.AlertService
	Reports    services.ReportService
}

type Handlers struct {
	customers  services.CustomerService
	cards      services.CardService
	operations services.OperationService
	fraud      services.FraudService
	alerts     services.AlertService
	reports    services.ReportService
	generator  *generator.OperationGenerator
}

// Создает новые обработчики REST API
func NewHandlers(svc Services) *Handlers {
	return &Handlers{
		customers:  svc.Customers,
		cards:      svc.Cards,
		operations: svc.Operations,
		fraud:      svc.Fraud,
		alerts:     svc.Alerts,
		reports:    svc.Reports,
		generator:  generator.NewOperationGenerator(),
	}
}

// statusFor сопоставляет доменные ошибки с HTTP-статусами
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrOperationNotFound),
		errors.Is(err, services.ErrAlertNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrAlreadyActive),
		errors.Is(err, services.ErrCustomerExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrCardNotActive):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidLimit),
		errors.Is(err, services.ErrInvalidOperation),
		errors.Is(err, services.ErrInvalidLocation),
		errors.Is(err, services.ErrInvalidCustomer),
		errors.Is(err, services.ErrInvalidAlertLevel),
		errors.Is(err, services.ErrInvalidReportRange),
		errors.Is(err, services.ErrUnknownCardType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDetectionNotQueued):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError пишет ошибку в формате {"error": ...}. Текст внутренних ошибок
// наружу не отдается.
func respondError(c *gin.Context, err error, internalMessage string) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, gin.H{"error": internalMessage})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func parseLimit(c *gin.Context) int {
	limit := defaultListLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= maxListLimit {
			limit = parsed
		}
	}
	return limit
}

// optionalDecimal разбирает необязательный параметр запроса
func optionalDecimal(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// optionalTime разбирает необязательный параметр запроса в формате RFC3339
func optionalTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
