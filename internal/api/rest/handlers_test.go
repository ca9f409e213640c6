package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"card-fraud-system/internal/models"
	"card-fraud-system/internal/services"
	servicemocks "card-fraud-system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	customers  *servicemocks.MockCustomerService
	cards      *servicemocks.MockCardService
	operations *servicemocks.MockOperationService
	fraud      *servicemocks.MockFraudService
	alerts     *servicemocks.MockAlertService
	reports    *servicemocks.MockReportService
}

func setupTestRouter() (*gin.Engine, *serviceMocks) {
	gin.SetMode(gin.TestMode)

	m := &serviceMocks{
		customers:  new(servicemocks.MockCustomerService),
		cards:      new(servicemocks.MockCardService),
		operations: new(servicemocks.MockOperationService),
		fraud:      new(servicemocks.MockFraudService),
		alerts:     new(servicemocks.MockAlertService),
		reports:    new(servicemocks.MockReportService),
	}
	handlers := NewHandlers(Services{
		Customers:  m.customers,
		Cards:      m.cards,
		Operations: m.operations,
		Fraud:      m.fraud,
		Alerts:     m.alerts,
		Reports:    m.reports,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	RegisterCardRoutes(api, handlers)
	RegisterDetectionRoutes(api, handlers)
	SetupCommonEndpoints(router)

	return router, m
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func testCard(status models.CardStatus) *models.Card {
	return &models.Card{
		ID:             "card_1",
		CardNumber:     "4000123412345678",
		ExpirationDate: time.Date(2028, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         status,
		CustomerID:     "cust_1",
		Variant:        models.DebitVariant{DailyLimit: decimal.NewFromInt(1000)},
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrCardNotFound, http.StatusNotFound},
		{services.ErrAlertNotFound, http.StatusNotFound},
		{services.ErrLimitExceeded, http.StatusUnprocessableEntity},
		{services.ErrAlreadyActive, http.StatusConflict},
		{services.ErrCustomerExists, http.StatusConflict},
		{services.ErrCardNotActive, http.StatusForbidden},
		{services.ErrInvalidAmount, http.StatusBadRequest},
		{services.ErrUnknownCardType, http.StatusBadRequest},
		{fmt.Errorf("%w: broker down", services.ErrDetectionNotQueued), http.StatusServiceUnavailable},
		{errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestHandlers_RecordOperation_Success(t *testing.T) {
	router, m := setupTestRouter()

	resp := &models.RecordOperationResponse{
		Operation:  &models.CardOperation{ID: "op_1", CardID: "card_1", Amount: decimal.NewFromInt(6000)},
		CardStatus: models.CardStatusActive,
		Alerts:     []*models.FraudAlert{{ID: "alert_1", Level: models.AlertLevelWarning}},
		Detection:  services.DetectionCompleted,
	}
	m.operations.On("RecordOperation", mock.Anything, mock.MatchedBy(func(req *models.RecordOperationRequest) bool {
		return req.CardID == "card_1" && req.Amount.Equal(decimal.NewFromInt(6000)) && req.Location == "Paris"
	})).Return(resp, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/operations",
		`{"amount": 6000, "type": "PAYMENT", "location": "Paris"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "completed", body["detection"])
	assert.Len(t, body["alerts"], 1)
	m.operations.AssertExpectations(t)
}

func TestHandlers_RecordOperation_InvalidJSON(t *testing.T) {
	router, m := setupTestRouter()

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/operations", "invalid json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
	m.operations.AssertNotCalled(t, "RecordOperation", mock.Anything, mock.Anything)
}

func TestHandlers_RecordOperation_Rejections(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{services.ErrLimitExceeded, http.StatusUnprocessableEntity},
		{services.ErrCardNotActive, http.StatusForbidden},
		{services.ErrCardNotFound, http.StatusNotFound},
		{services.ErrInvalidAmount, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router, m := setupTestRouter()
			m.operations.On("RecordOperation", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/operations",
				`{"amount": "10", "type": "PAYMENT", "location": "Paris"}`)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.err.Error(), decodeBody(t, w)["error"])
		})
	}
}

func TestHandlers_RecordOperation_RecordedButNotQueued(t *testing.T) {
	router, m := setupTestRouter()

	resp := &models.RecordOperationResponse{
		Operation: &models.CardOperation{ID: "op_1", CardID: "card_1"},
		Detection: services.DetectionNotQueued,
	}
	m.operations.On("RecordOperation", mock.Anything, mock.Anything).
		Return(resp, fmt.Errorf("%w: kafka down", services.ErrDetectionNotQueued))

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/operations",
		`{"amount": "10", "type": "PAYMENT", "location": "Paris"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "not_queued", result["detection"])
}

func TestHandlers_RecordOperation_DetectionFailureHidesInternalError(t *testing.T) {
	router, m := setupTestRouter()

	resp := &models.RecordOperationResponse{
		Operation: &models.CardOperation{ID: "op_1", CardID: "card_1"},
		Alerts:    []*models.FraudAlert{},
	}
	m.operations.On("RecordOperation", mock.Anything, mock.Anything).Return(resp, errors.New("database is locked"))

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/operations",
		`{"amount": "10", "type": "PAYMENT", "location": "Paris"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Operation recorded but detection failed", body["error"])
	assert.Contains(t, body, "result")
}

func TestHandlers_IssueCard_RevealsNumberOnce(t *testing.T) {
	router, m := setupTestRouter()
	m.cards.On("IssueCard", mock.Anything, mock.MatchedBy(func(req *models.IssueCardRequest) bool {
		return req.Type == models.CardTypeDebit && req.DailyLimit != nil
	})).Return(testCard(models.CardStatusActive), nil)
	m.cards.On("GetCard", mock.Anything, "card_1").Return(testCard(models.CardStatusActive), nil)

	w := doRequest(router, http.MethodPost, "/api/v1/cards",
		`{"customer_id": "cust_1", "type": "DEBIT", "daily_limit": "1000"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "4000123412345678", decodeBody(t, w)["card_number"])

	w = doRequest(router, http.MethodGet, "/api/v1/cards/card_1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "**** **** **** 5678", body["card_number"])
	assert.Equal(t, "DEBIT", body["type"])
	assert.Equal(t, "2028-03-10", body["expiration_date"])
}

func TestHandlers_ActivateCard_AlreadyActive(t *testing.T) {
	router, m := setupTestRouter()
	m.cards.On("ActivateCard", mock.Anything, "card_1").Return(nil, services.ErrAlreadyActive)

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/activate", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlers_BlockCard(t *testing.T) {
	router, m := setupTestRouter()
	m.cards.On("BlockCard", mock.Anything, "card_1").Return(testCard(models.CardStatusBlocked), nil)

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/block", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BLOCKED", decodeBody(t, w)["status"])
}

func TestHandlers_VerifyLimit(t *testing.T) {
	router, m := setupTestRouter()
	m.cards.On("VerifyLimit", mock.Anything, "card_1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("250.50"))
	})).Return(true, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/cards/card_1/verify-limit?amount=250.50", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["allowed"])

	w = doRequest(router, http.MethodGet, "/api/v1/cards/card_1/verify-limit?amount=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_DetectFraud(t *testing.T) {
	router, m := setupTestRouter()
	result := &models.DetectionResult{
		CardID:          "card_1",
		OperationsCount: 2,
		Alerts:          []*models.FraudAlert{{ID: "alert_1", Level: models.AlertLevelCritical}},
		Transitions:     []models.StatusTransition{{From: models.CardStatusActive, To: models.CardStatusBlocked, Rule: "rapid_cross_location"}},
		InitialStatus:   models.CardStatusActive,
		FinalStatus:     models.CardStatusBlocked,
	}
	m.fraud.On("DetectFraud", mock.Anything, "card_1").Return(result, nil)
	m.fraud.On("DetectFraud", mock.Anything, "missing").Return(nil, services.ErrCardNotFound)

	w := doRequest(router, http.MethodPost, "/api/v1/cards/card_1/detect", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BLOCKED", decodeBody(t, w)["final_status"])

	w = doRequest(router, http.MethodPost, "/api/v1/cards/missing/detect", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_FindOperations_ParsesFilter(t *testing.T) {
	router, m := setupTestRouter()
	m.operations.On("FindOperations", mock.Anything, mock.MatchedBy(func(f models.OperationFilter) bool {
		return f.CardID == "card_1" &&
			f.Type == models.OperationWithdrawal &&
			f.MinAmount != nil && f.MinAmount.Equal(decimal.NewFromInt(10)) &&
			f.MaxAmount == nil &&
			f.From != nil && f.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			f.Limit == 20
	})).Return([]*models.CardOperation{}, nil)

	w := doRequest(router, http.MethodGet,
		"/api/v1/operations?card_id=card_1&type=WITHDRAWAL&min_amount=10&from=2025-03-01T00:00:00Z&limit=20", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	m.operations.AssertExpectations(t)

	w = doRequest(router, http.MethodGet, "/api/v1/operations?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_GenerateRandomOperation(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, http.MethodGet, "/api/v1/operations/generate?card_id=card_1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "card_1", body["card_id"])
	assert.NotEmpty(t, body["location"])
	assert.NotEmpty(t, body["type"])
}

func TestHandlers_Alerts(t *testing.T) {
	router, m := setupTestRouter()
	m.alerts.On("ListAlertsByLevel", mock.Anything, models.AlertLevel("bogus")).Return(nil, services.ErrInvalidAlertLevel)
	m.alerts.On("ListAlerts", mock.Anything, "card_1").Return([]*models.FraudAlert{{ID: "alert_1"}}, nil)
	m.alerts.On("DeleteAlert", mock.Anything, "alert_x").Return(services.ErrAlertNotFound)

	w := doRequest(router, http.MethodGet, "/api/v1/alerts?level=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/alerts?card_id=card_1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["alerts"], 1)

	w = doRequest(router, http.MethodDelete, "/api/v1/alerts/alert_x", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_CreateCustomer(t *testing.T) {
	router, m := setupTestRouter()
	m.customers.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, services.ErrCustomerExists)

	w := doRequest(router, http.MethodPost, "/api/v1/customers", `{"name": "Alice", "email": "alice@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/customers", `{"name": "Alice", "email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_Reports(t *testing.T) {
	router, m := setupTestRouter()
	m.reports.On("MonthlyTotals", mock.Anything, 2025, 3).Return([]*models.TypeTotal{}, nil)
	m.reports.On("DailySummary", mock.Anything, 7).Return([]*models.DailySummary{}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/reports/monthly?year=2025&month=3", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/reports/monthly?year=2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/reports/daily", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	m.reports.AssertExpectations(t)
}

func TestHandlers_InternalErrorIsNotLeaked(t *testing.T) {
	router, m := setupTestRouter()
	m.operations.On("GetOperation", mock.Anything, "op_1").Return(nil, errors.New("sql: connection refused"))

	w := doRequest(router, http.MethodGet, "/api/v1/operations/op_1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to get operation", decodeBody(t, w)["error"])
}

func TestCommonEndpoints(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/events?limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w), "events")

	w = doRequest(router, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
