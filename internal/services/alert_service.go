package services

import (
	"context"
	"log"
	"strings"

	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/redis"
	"card-fraud-system/internal/storage"
)

// AlertServiceImpl реализует интерфейс AlertService
type AlertServiceImpl struct {
	alerts storage.AlertSink
	cache  redis.ClientInterface // Опциональные счетчики по уровням
}

func NewAlertService(alerts storage.AlertSink, cache redis.ClientInterface) AlertService {
	return &AlertServiceImpl{
		alerts: alerts,
		cache:  cache,
	}
}

func (s *AlertServiceImpl) ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error) {
	return s.alerts.ListAlerts(ctx, cardID)
}

func (s *AlertServiceImpl) ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error) {
	level = models.AlertLevel(strings.ToUpper(string(level)))
	if !level.IsValid() {
		return nil, ErrInvalidAlertLevel
	}
	return s.alerts.ListAlertsByLevel(ctx, level)
}

func (s *AlertServiceImpl) ListCriticalAlerts(ctx context.Context) ([]*models.FraudAlert, error) {
	return s.alerts.ListAlertsByLevel(ctx, models.AlertLevelCritical)
}

func (s *AlertServiceImpl) DeleteAlert(ctx context.Context, alertID string) error {
	deleted, err := s.alerts.DeleteAlert(ctx, alertID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAlertNotFound
	}

	logger.LogEvent(logger.EventDBUpdated, ServiceFraudDetection, logger.ComponentSQLite, map[string]interface{}{
		"action":   "alert_deleted",
		"alert_id": alertID,
	})
	return nil
}

// AlertStats берет счетчики из Redis, без Redis или при ошибке считает по хранилищу
func (s *AlertServiceImpl) AlertStats(ctx context.Context) (map[string]int64, error) {
	if s.cache != nil {
		stats, err := s.cache.GetAlertStats(ctx)
		if err == nil {
			return stats, nil
		}
		log.Printf("Error reading alert stats from Redis: %v", err)
	}

	stats := make(map[string]int64)
	for _, level := range []models.AlertLevel{models.AlertLevelWarning, models.AlertLevelCritical} {
		alerts, err := s.alerts.ListAlertsByLevel(ctx, level)
		if err != nil {
			return nil, err
		}
		stats[strings.ToLower(string(level))] = int64(len(alerts))
	}
	return stats, nil
}
