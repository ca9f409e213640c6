package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventTypeOperationRecorded = "operation_recorded"
	EventTypeAlertRaised       = "alert_raised"
	EventTypeStatusChanged     = "card_status_changed"

	StatusSourceManual   = "manual"
	StatusSourceDetector = "detector"
)

// KafkaOperationEvent публикуется после записи операции в журнал
type KafkaOperationEvent struct {
	EventID   string             `json:"event_id"`
	EventType string             `json:"event_type"`
	Timestamp time.Time          `json:"timestamp"`
	Data      KafkaOperationData `json:"data"`
}

type KafkaOperationData struct {
	OperationID   string          `json:"operation_id"`
	CardID        string          `json:"card_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          OperationType   `json:"type"`
	Location      string          `json:"location"`
	OperationDate time.Time       `json:"operation_date"`
}

// KafkaAlertEvent публикуется для каждого сохраненного оповещения
type KafkaAlertEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      KafkaAlertData `json:"data"`
}

type KafkaAlertData struct {
	AlertID     string     `json:"alert_id"`
	CardID      string     `json:"card_id"`
	Level       AlertLevel `json:"level"`
	Description string     `json:"description"`
}

// KafkaStatusEvent публикуется при каждой смене статуса карты
type KafkaStatusEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      KafkaStatusData `json:"data"`
}

type KafkaStatusData struct {
	CardID         string     `json:"card_id"`
	PreviousStatus CardStatus `json:"previous_status"`
	Status         CardStatus `json:"status"`
	Source         string     `json:"source"`
}
