package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OperationPayment       OperationType = "PAYMENT"
	OperationWithdrawal    OperationType = "WITHDRAWAL"
	OperationTransfer      OperationType = "TRANSFER"
	OperationOnlinePayment OperationType = "ONLINE_PAYMENT"
	OperationPurchase      OperationType = "PURCHASE"
)

// OperationTypes перечисляет все типы операций
var OperationTypes = []OperationType{
	OperationPayment,
	OperationWithdrawal,
	OperationTransfer,
	OperationOnlinePayment,
	OperationPurchase,
}

func (t OperationType) IsValid() bool {
	for _, known := range OperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CardOperation - неизменяемая запись журнала операций по карте
type CardOperation struct {
	ID            string          `json:"id"`
	OperationDate time.Time       `json:"operation_date"`
	Amount        decimal.Decimal `json:"amount"`
	Type          OperationType   `json:"type"`
	Location      string          `json:"location"`
	CardID        string          `json:"card_id"`
}

// OperationFilter задает критерии выборки операций. Пустые поля не ограничивают выборку.
type OperationFilter struct {
	CardID    string
	Type      OperationType
	Location  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	From      *time.Time
	To        *time.Time
	Limit     int
}
