package services

import (
	"time"

	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"

	"github.com/google/uuid"
)

// Имена сервисов в журнале событий
const (
	ServiceCardService    = "card-service"
	ServiceFraudDetection = "fraud-detection-service"
)

// eventPublisher публикует события карт в Kafka. Без продюсера ничего не делает.
type eventPublisher struct {
	producer kafka.Producer
	service  string
}

func newEventID() string {
	return "evt_" + uuid.New().String()
}

func (p eventPublisher) operationRecorded(op *models.CardOperation) error {
	if p.producer == nil {
		return nil
	}

	event := &models.KafkaOperationEvent{
		EventID:   newEventID(),
		EventType: models.EventTypeOperationRecorded,
		Timestamp: time.Now(),
		Data: models.KafkaOperationData{
			OperationID:   op.ID,
			CardID:        op.CardID,
			Amount:        op.Amount,
			Type:          op.Type,
			Location:      op.Location,
			OperationDate: op.OperationDate,
		},
	}
	if err := p.producer.SendOperationEvent(event); err != nil {
		return err
	}

	p.logSent(event.EventID, event.EventType, op.CardID)
	return nil
}

func (p eventPublisher) alertRaised(alert *models.FraudAlert) error {
	if p.producer == nil {
		return nil
	}

	event := &models.KafkaAlertEvent{
		EventID:   newEventID(),
		EventType: models.EventTypeAlertRaised,
		Timestamp: time.Now(),
		Data: models.KafkaAlertData{
			AlertID:     alert.ID,
			CardID:      alert.CardID,
			Level:       alert.Level,
			Description: alert.Description,
		},
	}
	if err := p.producer.SendAlertEvent(event); err != nil {
		return err
	}

	p.logSent(event.EventID, event.EventType, alert.CardID)
	return nil
}

func (p eventPublisher) statusChanged(cardID string, from, to models.CardStatus, source string) error {
	if p.producer == nil {
		return nil
	}

	event := &models.KafkaStatusEvent{
		EventID:   newEventID(),
		EventType: models.EventTypeStatusChanged,
		Timestamp: time.Now(),
		Data: models.KafkaStatusData{
			CardID:         cardID,
			PreviousStatus: from,
			Status:         to,
			Source:         source,
		},
	}
	if err := p.producer.SendStatusEvent(event); err != nil {
		return err
	}

	p.logSent(event.EventID, event.EventType, cardID)
	return nil
}

func (p eventPublisher) logSent(eventID, eventType, cardID string) {
	logger.LogEvent(logger.EventKafkaSent, p.service, logger.ComponentKafka, map[string]interface{}{
		"event_id":   eventID,
		"event_type": eventType,
		"card_id":    cardID,
	})
}
