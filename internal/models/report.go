package models

import "github.com/shopspring/decimal"

// CardUsage - количество операций по карте
type CardUsage struct {
	CardID         string          `json:"card_id"`
	CardNumber     string          `json:"card_number"`
	OperationCount int             `json:"operation_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// TypeTotal - сумма операций определенного типа
type TypeTotal struct {
	Type           OperationType   `json:"type"`
	OperationCount int             `json:"operation_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// StatusCount - количество карт в статусе
type StatusCount struct {
	Status CardStatus `json:"status"`
	Count  int        `json:"count"`
}

// DailySummary - сводка операций за день (дата в формате YYYY-MM-DD)
type DailySummary struct {
	Day            string          `json:"day"`
	OperationCount int             `json:"operation_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// LocationActivity - активность по месту проведения операций
type LocationActivity struct {
	Location       string `json:"location"`
	OperationCount int    `json:"operation_count"`
}

// CardTypeAverage - средняя сумма операции по типу карты
type CardTypeAverage struct {
	Type           CardType        `json:"type"`
	OperationCount int             `json:"operation_count"`
	AverageAmount  decimal.Decimal `json:"average_amount"`
}
