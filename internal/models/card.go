package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CardStatus описывает жизненный цикл карты
type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusSuspended CardStatus = "SUSPENDED"
	CardStatusBlocked   CardStatus = "BLOCKED"
)

// IsValid проверяет, что статус входит в допустимое множество
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusActive, CardStatusSuspended, CardStatusBlocked:
		return true
	}
	return false
}

type CardType string

const (
	CardTypeDebit   CardType = "DEBIT"
	CardTypeCredit  CardType = "CREDIT"
	CardTypePrepaid CardType = "PREPAID"
)

// CardVariant - закрытое множество типов карт. Реализуется только типами этого пакета.
type CardVariant interface {
	CardType() CardType
	sealed()
}

// DebitVariant - дебетовая карта с дневным лимитом
type DebitVariant struct {
	DailyLimit decimal.Decimal
}

// CreditVariant - кредитная карта с месячным лимитом и ставкой
type CreditVariant struct {
	MonthlyLimit decimal.Decimal
	InterestRate decimal.Decimal
}

// PrepaidVariant - предоплаченная карта с доступным балансом
type PrepaidVariant struct {
	AvailableBalance decimal.Decimal
}

func (DebitVariant) CardType() CardType   { return CardTypeDebit }
func (CreditVariant) CardType() CardType  { return CardTypeCredit }
func (PrepaidVariant) CardType() CardType { return CardTypePrepaid }

func (DebitVariant) sealed()   {}
func (CreditVariant) sealed()  {}
func (PrepaidVariant) sealed() {}

// Card представляет банковскую карту. Variant задается при выпуске и не меняется,
// изменяемым полем является только Status.
type Card struct {
	ID             string
	CardNumber     string
	ExpirationDate time.Time
	Status         CardStatus
	CustomerID     string
	Variant        CardVariant
	CreatedAt      time.Time
}

// Type возвращает тип карты или пустую строку, если вариант не задан
func (c *Card) Type() CardType {
	if c.Variant == nil {
		return ""
	}
	return c.Variant.CardType()
}

// MaskedNumber возвращает номер карты в виде "**** **** **** 1234"
func (c *Card) MaskedNumber() string {
	return MaskCardNumber(c.CardNumber)
}

func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return strings.Repeat("*", len(number))
	}
	return "**** **** **** " + number[len(number)-4:]
}

// CardResponse - представление карты для API
type CardResponse struct {
	ID               string           `json:"id"`
	CardNumber       string           `json:"card_number"`
	ExpirationDate   string           `json:"expiration_date"`
	Status           CardStatus       `json:"status"`
	CustomerID       string           `json:"customer_id"`
	Type             CardType         `json:"type"`
	DailyLimit       *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit     *decimal.Decimal `json:"monthly_limit,omitempty"`
	InterestRate     *decimal.Decimal `json:"interest_rate,omitempty"`
	AvailableBalance *decimal.Decimal `json:"available_balance,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// NewCardResponse строит ответ API. Полный номер раскрывается только при выпуске карты.
func NewCardResponse(card *Card, revealNumber bool) *CardResponse {
	resp := &CardResponse{
		ID:             card.ID,
		CardNumber:     card.MaskedNumber(),
		ExpirationDate: card.ExpirationDate.Format("2006-01-02"),
		Status:         card.Status,
		CustomerID:     card.CustomerID,
		Type:           card.Type(),
		CreatedAt:      card.CreatedAt,
	}
	if revealNumber {
		resp.CardNumber = card.CardNumber
	}

	switch v := card.Variant.(type) {
	case DebitVariant:
		resp.DailyLimit = &v.DailyLimit
	case CreditVariant:
		resp.MonthlyLimit = &v.MonthlyLimit
		resp.InterestRate = &v.InterestRate
	case PrepaidVariant:
		resp.AvailableBalance = &v.AvailableBalance
	}

	return resp
}
