package fraud_detection

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-fraud-system/internal/api/rest"
	"card-fraud-system/internal/metrics"
	"card-fraud-system/internal/models"
	redismocks "card-fraud-system/internal/redis/mocks"
	"card-fraud-system/internal/services"
	servicemocks "card-fraud-system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCleaner struct {
	calls int
	err   error
}

func (f *fakeCleaner) ClearAll(ctx context.Context) error {
	f.calls++
	return f.err
}

func operationEvent(cardID string) *models.KafkaOperationEvent {
	return &models.KafkaOperationEvent{
		EventID:   "evt-1",
		EventType: "operation_recorded",
		Data: models.KafkaOperationData{
			OperationID: "op-1",
			CardID:      cardID,
		},
	}
}

func TestOperationHandler_RunsDetection(t *testing.T) {
	fraudService := new(servicemocks.MockFraudService)
	fraudService.On("DetectFraud", mock.Anything, "card-1").Return(&models.DetectionResult{
		CardID:      "card-1",
		FinalStatus: models.CardStatusBlocked,
	}, nil)

	handler := newOperationHandler(fraudService, "cards.operations.recorded")
	require.NoError(t, handler(context.Background(), operationEvent("card-1")))

	fraudService.AssertExpectations(t)
}

func TestOperationHandler_SkipsUnknownCard(t *testing.T) {
	fraudService := new(servicemocks.MockFraudService)
	fraudService.On("DetectFraud", mock.Anything, "gone").Return(nil, services.ErrCardNotFound)

	handler := newOperationHandler(fraudService, "cards.operations.recorded")
	assert.NoError(t, handler(context.Background(), operationEvent("gone")))
}

func TestOperationHandler_ReturnsStorageError(t *testing.T) {
	storageErr := errors.New("database is locked")
	fraudService := new(servicemocks.MockFraudService)
	fraudService.On("DetectFraud", mock.Anything, "card-1").Return(&models.DetectionResult{CardID: "card-1"}, storageErr)

	handler := newOperationHandler(fraudService, "cards.operations.recorded")
	assert.ErrorIs(t, handler(context.Background(), operationEvent("card-1")), storageErr)
}

func setupRoutes(cleaner *fakeCleaner, cache *redismocks.MockClientInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := rest.NewHandlers(rest.Services{
		Fraud:  new(servicemocks.MockFraudService),
		Alerts: new(servicemocks.MockAlertService),
	})
	if cache == nil {
		SetupRoutes(router, handlers, cleaner, nil, metrics.NewMetricsCollector().GetHandler())
	} else {
		SetupRoutes(router, handlers, cleaner, cache, metrics.NewMetricsCollector().GetHandler())
	}
	return router
}

func TestClearData_WithCache(t *testing.T) {
	cleaner := &fakeCleaner{}
	cache := new(redismocks.MockClientInterface)
	cache.On("ClearCardData", mock.Anything).Return(nil)

	router := setupRoutes(cleaner, cache)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/data", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cleaner.calls)
	cache.AssertExpectations(t)
}

func TestClearData_WithoutCache(t *testing.T) {
	cleaner := &fakeCleaner{}

	router := setupRoutes(cleaner, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/data", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cleaner.calls)
}

func TestClearData_StorageError(t *testing.T) {
	cleaner := &fakeCleaner{err: errors.New("disk I/O error")}
	cache := new(redismocks.MockClientInterface)

	router := setupRoutes(cleaner, cache)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/data", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk I/O")
	cache.AssertNotCalled(t, "ClearCardData", mock.Anything)
}

func TestMetricsAndHealthRoutes(t *testing.T) {
	router := setupRoutes(&fakeCleaner{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
