package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest - запрос на создание клиента
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// IssueCardRequest - запрос на выпуск карты. Набор обязательных полей зависит от типа:
// DEBIT - daily_limit, CREDIT - monthly_limit и interest_rate, PREPAID - initial_balance.
type IssueCardRequest struct {
	CustomerID     string           `json:"customer_id" binding:"required"`
	Type           CardType         `json:"type" binding:"required"`
	DailyLimit     *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit   *decimal.Decimal `json:"monthly_limit,omitempty"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

// RecordOperationRequest - запрос на проведение операции по карте
type RecordOperationRequest struct {
	CardID    string          `json:"card_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      OperationType   `json:"type" binding:"required"`
	Location  string          `json:"location" binding:"required"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// RecordOperationResponse - результат проведения операции
type RecordOperationResponse struct {
	Operation  *CardOperation `json:"operation"`
	CardStatus CardStatus     `json:"card_status"`
	Alerts     []*FraudAlert  `json:"alerts"`
	Detection  string         `json:"detection"` // completed | queued | not_queued
}

// StatusTransition - смена статуса карты, примененная конвейером правил
type StatusTransition struct {
	From CardStatus `json:"from"`
	To   CardStatus `json:"to"`
	Rule string     `json:"rule"`
}

// DetectionResult - итог одного прогона конвейера правил
type DetectionResult struct {
	CardID          string             `json:"card_id"`
	OperationsCount int                `json:"operations_count"`
	Alerts          []*FraudAlert      `json:"alerts"`
	Transitions     []StatusTransition `json:"transitions"`
	InitialStatus   CardStatus         `json:"initial_status,omitempty"`
	FinalStatus     CardStatus         `json:"final_status,omitempty"`
}

// StatusChanged сообщает, отличается ли итоговый статус от исходного
func (r *DetectionResult) StatusChanged() bool {
	return r.FinalStatus != r.InitialStatus
}
