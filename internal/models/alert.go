package models

import "time"

type AlertLevel string

const (
	AlertLevelWarning  AlertLevel = "WARNING"
	AlertLevelCritical AlertLevel = "CRITICAL"
)

func (l AlertLevel) IsValid() bool {
	return l == AlertLevelWarning || l == AlertLevelCritical
}

// FraudAlert - неизменяемое оповещение, создаваемое только конвейером правил
type FraudAlert struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Level       AlertLevel `json:"level"`
	CardID      string     `json:"card_id"`
	CreatedAt   time.Time  `json:"created_at"`
}
