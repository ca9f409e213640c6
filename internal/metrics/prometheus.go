package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"card-fraud-system/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Причины отклонения операции
const (
	RejectCardNotFound  = "card_not_found"
	RejectCardNotActive = "card_not_active"
	RejectLimitExceeded = "limit_exceeded"
	RejectInvalid       = "invalid_request"
)

// MetricsCollector собирает метрики операций и конвейера правил в собственном реестре
type MetricsCollector struct {
	registry           *prometheus.Registry
	operationsRecorded *prometheus.CounterVec
	operationsRejected *prometheus.CounterVec
	alertsRaised       *prometheus.CounterVec
	statusTransitions  *prometheus.CounterVec
	detectionDuration  prometheus.Histogram
	detectionFailures  prometheus.Counter
}

func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsCollector{
		registry: registry,
		operationsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_operations_recorded_total",
			Help: "Total number of card operations appended to the ledger",
		}, []string{"type"}),
		operationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_operations_rejected_total",
			Help: "Total number of card operations rejected before recording",
		}, []string{"reason"}),
		alertsRaised: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fraud_alerts_raised_total",
			Help: "Total number of fraud alerts persisted",
		}, []string{"level"}),
		statusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "card_status_transitions_total",
			Help: "Total number of card status changes applied by detection",
		}, []string{"rule", "status"}),
		detectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fraud_detection_duration_seconds",
			Help:    "Time taken by one detection pass over a card history",
			Buckets: prometheus.DefBuckets,
		}),
		detectionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fraud_detection_failures_total",
			Help: "Total number of detection passes that ended with an error",
		}),
	}
}

func (m *MetricsCollector) RecordOperation(opType models.OperationType) {
	m.operationsRecorded.WithLabelValues(string(opType)).Inc()
}

func (m *MetricsCollector) RecordRejection(reason string) {
	m.operationsRejected.WithLabelValues(reason).Inc()
}

// RecordDetection учитывает прогон конвейера. При частичном применении
// result содержит уже сохраненные находки и учитывается вместе с ошибкой.
func (m *MetricsCollector) RecordDetection(duration time.Duration, result *models.DetectionResult, err error) {
	m.detectionDuration.Observe(duration.Seconds())
	if err != nil {
		m.detectionFailures.Inc()
	}
	if result == nil {
		return
	}
	for _, alert := range result.Alerts {
		m.alertsRaised.WithLabelValues(string(alert.Level)).Inc()
	}
	for _, tr := range result.Transitions {
		m.statusTransitions.WithLabelValues(tr.Rule, string(tr.To)).Inc()
	}
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartMetricsServer поднимает отдельный HTTP-сервер с /metrics
func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Starting metrics server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server failed: %v", err)
		}
	}()

	return server
}

// Shutdown останавливает сервер метрик
func (m *MetricsCollector) Shutdown(ctx context.Context, server *http.Server) error {
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
