package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *MetricsCollector) string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.GetHandler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetricsCollector_Operations(t *testing.T) {
	m := NewMetricsCollector()

	m.RecordOperation(models.OperationPayment)
	m.RecordOperation(models.OperationPayment)
	m.RecordRejection(RejectLimitExceeded)

	body := scrape(t, m)
	assert.Contains(t, body, `card_operations_recorded_total{type="PAYMENT"} 2`)
	assert.Contains(t, body, `card_operations_rejected_total{reason="limit_exceeded"} 1`)
}

func TestMetricsCollector_Detection(t *testing.T) {
	m := NewMetricsCollector()

	result := &models.DetectionResult{
		CardID: "card_1",
		Alerts: []*models.FraudAlert{
			{Level: models.AlertLevelWarning},
			{Level: models.AlertLevelCritical},
		},
		Transitions: []models.StatusTransition{
			{From: models.CardStatusActive, To: models.CardStatusBlocked, Rule: "rapid_cross_location"},
		},
	}
	m.RecordDetection(15*time.Millisecond, result, nil)
	m.RecordDetection(time.Millisecond, nil, errors.New("db down"))

	body := scrape(t, m)
	assert.Contains(t, body, `fraud_alerts_raised_total{level="WARNING"} 1`)
	assert.Contains(t, body, `fraud_alerts_raised_total{level="CRITICAL"} 1`)
	assert.Contains(t, body, `card_status_transitions_total{rule="rapid_cross_location",status="BLOCKED"} 1`)
	assert.Contains(t, body, `fraud_detection_duration_seconds_count 2`)
	assert.Contains(t, body, `fraud_detection_failures_total 1`)
}

func TestMetricsCollector_SeparateRegistries(t *testing.T) {
	first := NewMetricsCollector()
	second := NewMetricsCollector()

	first.RecordOperation(models.OperationTransfer)

	assert.Contains(t, scrape(t, first), `type="TRANSFER"`)
	assert.NotContains(t, scrape(t, second), `type="TRANSFER"`)
}
