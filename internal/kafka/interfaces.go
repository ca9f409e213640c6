package kafka

import (
	"context"

	"card-fraud-system/internal/models"
)

// Producer определяет интерфейс для отправки событий карт в Kafka
type Producer interface {
	SendOperationEvent(event *models.KafkaOperationEvent) error
	SendAlertEvent(event *models.KafkaAlertEvent) error
	SendStatusEvent(event *models.KafkaStatusEvent) error

	Close() error
}

// Consumer читает события операций и передает их обработчику
type Consumer interface {
	Start(ctx context.Context) error
	Close() error
}

// OperationHandler обрабатывает одно событие записанной операции
type OperationHandler func(ctx context.Context, event *models.KafkaOperationEvent) error
