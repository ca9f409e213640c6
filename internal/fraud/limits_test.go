package fraud

import (
	"testing"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVerifyLimit_ByVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant models.CardVariant
		amount  string
		want    bool
	}{
		{"debit below daily limit", models.DebitVariant{DailyLimit: decimal.NewFromInt(1000)}, "999.99", true},
		{"debit equal to daily limit", models.DebitVariant{DailyLimit: decimal.NewFromInt(1000)}, "1000.00", true},
		{"debit above daily limit", models.DebitVariant{DailyLimit: decimal.NewFromInt(1000)}, "1000.01", false},
		{"credit uses monthly limit", models.CreditVariant{MonthlyLimit: decimal.NewFromInt(5000), InterestRate: decimal.RequireFromString("0.2")}, "5000", true},
		{"credit above monthly limit", models.CreditVariant{MonthlyLimit: decimal.NewFromInt(5000)}, "5000.5", false},
		{"prepaid uses balance", models.PrepaidVariant{AvailableBalance: decimal.RequireFromString("20.10")}, "20.1", true},
		{"prepaid above balance", models.PrepaidVariant{AvailableBalance: decimal.RequireFromString("20.10")}, "20.11", false},
		{"unknown variant rejected", nil, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &models.Card{ID: "card_1", Variant: tt.variant}
			assert.Equal(t, tt.want, VerifyLimit(card, decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestVerifyLimit_IgnoresStatus(t *testing.T) {
	card := &models.Card{
		ID:      "card_1",
		Status:  models.CardStatusBlocked,
		Variant: models.DebitVariant{DailyLimit: decimal.NewFromInt(100)},
	}

	assert.True(t, VerifyLimit(card, decimal.NewFromInt(50)))
}

func TestCeiling(t *testing.T) {
	ceiling, ok := Ceiling(&models.Card{Variant: models.CreditVariant{MonthlyLimit: decimal.NewFromInt(700)}})
	assert.True(t, ok)
	assert.True(t, ceiling.Equal(decimal.NewFromInt(700)))

	_, ok = Ceiling(&models.Card{})
	assert.False(t, ok)
}
