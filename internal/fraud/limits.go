package fraud

import (
	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

// Ceiling возвращает максимальную сумму операции для варианта карты:
// дневной лимит для дебетовой, месячный для кредитной, баланс для предоплаченной.
// Для неизвестного варианта возвращает false.
func Ceiling(card *models.Card) (decimal.Decimal, bool) {
	switch v := card.Variant.(type) {
	case models.DebitVariant:
		return v.DailyLimit, true
	case models.CreditVariant:
		return v.MonthlyLimit, true
	case models.PrepaidVariant:
		return v.AvailableBalance, true
	}
	return decimal.Zero, false
}

// VerifyLimit допускает операцию, если amount не превышает предел карты.
// Статус карты здесь не проверяется.
func VerifyLimit(card *models.Card, amount decimal.Decimal) bool {
	ceiling, ok := Ceiling(card)
	if !ok {
		return false
	}
	return amount.LessThanOrEqual(ceiling)
}
