package services

import (
	"context"
	"log"
	"time"

	"card-fraud-system/internal/fraud"
	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/locker"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/metrics"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/redis"
)

// FraudServiceImpl реализует интерфейс FraudService поверх fraud.Pipeline
type FraudServiceImpl struct {
	pipeline *fraud.Pipeline
	locker   locker.CardLocker
	events   eventPublisher
	cache    redis.ClientInterface // Опциональные счетчики оповещений и кэш статусов
	metrics  *metrics.MetricsCollector
	service  string
}

// NewFraudService создает сервис детекции. service - имя процесса для журнала событий,
// producer и cache могут быть nil.
func NewFraudService(
	pipeline *fraud.Pipeline,
	cardLocker locker.CardLocker,
	producer kafka.Producer,
	cache redis.ClientInterface,
	collector *metrics.MetricsCollector,
	service string,
) FraudService {
	return &FraudServiceImpl{
		pipeline: pipeline,
		locker:   cardLocker,
		events:   eventPublisher{producer: producer, service: service},
		cache:    cache,
		metrics:  collector,
		service:  service,
	}
}

func (s *FraudServiceImpl) DetectFraud(ctx context.Context, cardID string) (*models.DetectionResult, error) {
	unlock, err := s.locker.Lock(ctx, cardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.Detect(ctx, cardID)
}

func (s *FraudServiceImpl) Detect(ctx context.Context, cardID string) (*models.DetectionResult, error) {
	logger.LogEvent(logger.EventDetectionStarted, s.service, logger.ComponentPipeline, map[string]interface{}{
		"card_id": cardID,
	})

	start := time.Now()
	result, err := s.pipeline.Detect(ctx, cardID)
	s.metrics.RecordDetection(time.Since(start), result, err)

	// Уже примененные находки публикуются и при частичном применении
	if result != nil {
		s.publish(context.WithoutCancel(ctx), result)
	}

	if err != nil {
		log.Printf("Detection for card %s failed: %v", cardID, err)
		return result, err
	}

	logger.LogEvent(logger.EventDetectionDone, s.service, logger.ComponentPipeline, map[string]interface{}{
		"card_id":      cardID,
		"operations":   result.OperationsCount,
		"alerts":       len(result.Alerts),
		"final_status": string(result.FinalStatus),
	})

	return result, nil
}

// publish разносит результат детекции по Kafka, Redis и журналу событий.
// Ошибки здесь только логируются: источник истины - хранилище.
func (s *FraudServiceImpl) publish(ctx context.Context, result *models.DetectionResult) {
	for _, alert := range result.Alerts {
		logger.LogEvent(logger.EventAlertRaised, s.service, logger.ComponentPipeline, map[string]interface{}{
			"alert_id": alert.ID,
			"card_id":  alert.CardID,
			"level":    string(alert.Level),
		})

		if err := s.events.alertRaised(alert); err != nil {
			log.Printf("Error publishing alert %s: %v", alert.ID, err)
		}

		if s.cache != nil {
			if err := s.cache.IncrementAlertStats(ctx, alert.Level); err != nil {
				log.Printf("Error updating alert stats: %v", err)
			}
			if err := s.cache.IncrementCardAlertCount(ctx, alert.CardID); err != nil {
				log.Printf("Error updating alert count for card %s: %v", alert.CardID, err)
			}
		}
	}

	for _, tr := range result.Transitions {
		logger.LogEvent(logger.EventCardStatusChanged, s.service, logger.ComponentSQLite, map[string]interface{}{
			"card_id":         result.CardID,
			"previous_status": string(tr.From),
			"status":          string(tr.To),
			"rule":            tr.Rule,
			"source":          models.StatusSourceDetector,
		})

		if err := s.events.statusChanged(result.CardID, tr.From, tr.To, models.StatusSourceDetector); err != nil {
			log.Printf("Error publishing status event for card %s: %v", result.CardID, err)
		}
	}

	if s.cache != nil && len(result.Transitions) > 0 {
		if err := s.cache.CacheCardStatus(ctx, result.CardID, result.FinalStatus); err != nil {
			log.Printf("Error caching status for card %s: %v", result.CardID, err)
		} else {
			logger.LogEvent(logger.EventRedisSaved, s.service, logger.ComponentRedis, map[string]interface{}{
				"card_id": result.CardID,
				"status":  string(result.FinalStatus),
			})
		}
	}
}
