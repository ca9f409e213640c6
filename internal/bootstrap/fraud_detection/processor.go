package fraud_detection

import (
	"context"
	"errors"
	"log"

	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/services"
)

// newOperationHandler возвращает обработчик событий операций: детекция по карте
// под блокировкой карты
func newOperationHandler(fraudService services.FraudService, topic string) kafka.OperationHandler {
	return func(ctx context.Context, event *models.KafkaOperationEvent) error {
		cardID := event.Data.CardID
		log.Printf("Processing operation %s for card %s", event.Data.OperationID, cardID)

		logger.LogEvent(logger.EventKafkaReceived, services.ServiceFraudDetection, logger.ComponentKafka, map[string]interface{}{
			"operation_id": event.Data.OperationID,
			"card_id":      cardID,
			"event_id":     event.EventID,
			"topic":        topic,
		})

		result, err := fraudService.DetectFraud(ctx, cardID)
		if errors.Is(err, services.ErrCardNotFound) {
			// Карта могла быть удалена очисткой данных, повтор не поможет
			log.Printf("Card %s not found, skipping operation %s", cardID, event.Data.OperationID)
			return nil
		}
		if err != nil {
			if result != nil {
				log.Printf("Detection for card %s stopped after %d alerts: %v", cardID, len(result.Alerts), err)
			}
			return err
		}

		log.Printf("Card %s analyzed: alerts=%d, status=%s", cardID, len(result.Alerts), result.FinalStatus)
		return nil
	}
}
