package services

import (
	"context"
	"time"

	"card-fraud-system/internal/models"
	storagemocks "card-fraud-system/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func debitCard(id string, status models.CardStatus, limit int64) *models.Card {
	return &models.Card{
		ID:             id,
		CardNumber:     "4000123412341234",
		ExpirationDate: testNow.AddDate(3, 0, 0),
		Status:         status,
		CustomerID:     "cust_1",
		Variant:        models.DebitVariant{DailyLimit: decimal.NewFromInt(limit)},
		CreatedAt:      testNow,
	}
}

// echoAppend возвращает записанную операцию с назначенным id
func echoAppend(ledger *storagemocks.MockOperationLedger) *mock.Call {
	return ledger.On("AppendOperation", mock.Anything, mock.AnythingOfType("*models.CardOperation")).
		Return(func(_ context.Context, op *models.CardOperation) *models.CardOperation {
			saved := *op
			saved.ID = "op_1"
			return &saved
		}, nil)
}

// echoAlert возвращает сохраненное оповещение с назначенным id
func echoAlert(alerts *storagemocks.MockAlertSink) *mock.Call {
	return alerts.On("SaveAlert", mock.Anything, mock.AnythingOfType("*models.FraudAlert")).
		Return(func(_ context.Context, a *models.FraudAlert) *models.FraudAlert {
			saved := *a
			saved.ID = "alert_" + string(a.Level)
			return &saved
		}, nil)
}

type opSpec struct {
	offset   time.Duration
	amount   int64
	location string
}

func ops(cardID string, specs ...opSpec) []*models.CardOperation {
	result := make([]*models.CardOperation, 0, len(specs))
	for i, s := range specs {
		result = append(result, &models.CardOperation{
			ID:            "op_" + string(rune('a'+i)),
			OperationDate: testNow.Add(s.offset),
			Amount:        decimal.NewFromInt(s.amount),
			Type:          models.OperationPayment,
			Location:      s.location,
			CardID:        cardID,
		})
	}
	return result
}
