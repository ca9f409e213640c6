package fraud

import (
	"fmt"
	"time"

	"card-fraud-system/config"
	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

const (
	RuleHighAmount         = "high_amount"
	RuleRapidCrossLocation = "rapid_cross_location"
	RuleBurstCount         = "burst_count"

	descriptionTimeLayout = "2006-01-02T15:04:05"
)

// Thresholds - пороги правил
type Thresholds struct {
	SuspiciousAmount   decimal.Decimal
	RapidWindowMinutes int64
	BurstWindowMinutes int64
	BurstSize          int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SuspiciousAmount:   decimal.NewFromInt(5000),
		RapidWindowMinutes: 30,
		BurstWindowMinutes: 60,
		BurstSize:          5,
	}
}

// Finding - результат срабатывания правила: оповещение и, возможно, запрошенный статус карты
type Finding struct {
	Rule        string
	CardID      string
	Level       models.AlertLevel
	Description string
	Status      models.CardStatus // пустой, если правило не меняет статус
}

// Rule проверяет историю карты (новые операции первыми)
type Rule func(history []*models.CardOperation) []Finding

// Rules возвращает правила в порядке применения. Порядок важен: при нескольких
// запросах смены статуса побеждает последний.
func (t Thresholds) Rules() []Rule {
	return []Rule{t.HighAmount, t.RapidCrossLocation, t.BurstCount}
}

// Evaluate прогоняет все правила по одному снимку истории
func (t Thresholds) Evaluate(history []*models.CardOperation) []Finding {
	var findings []Finding
	for _, rule := range t.Rules() {
		findings = append(findings, rule(history)...)
	}
	return findings
}

// HighAmount - одно WARNING-оповещение на каждую операцию с суммой выше порога
func (t Thresholds) HighAmount(history []*models.CardOperation) []Finding {
	var findings []Finding
	for _, op := range history {
		if !op.Amount.GreaterThan(t.SuspiciousAmount) {
			continue
		}
		findings = append(findings, Finding{
			Rule:   RuleHighAmount,
			CardID: op.CardID,
			Level:  models.AlertLevelWarning,
			Description: fmt.Sprintf("High amount detected: %s EUR at %s on %s",
				op.Amount.StringFixed(2), op.Location, op.OperationDate.Format(descriptionTimeLayout)),
		})
	}
	return findings
}

// RapidCrossLocation сравнивает только соседние операции: разные места
// в пределах окна дают CRITICAL и блокировку карты.
func (t Thresholds) RapidCrossLocation(history []*models.CardOperation) []Finding {
	var findings []Finding
	for i := 0; i+1 < len(history); i++ {
		newer, older := history[i], history[i+1]

		minutes := minutesBetween(newer.OperationDate, older.OperationDate)
		if minutes > t.RapidWindowMinutes || newer.Location == older.Location {
			continue
		}

		findings = append(findings, Finding{
			Rule:   RuleRapidCrossLocation,
			CardID: newer.CardID,
			Level:  models.AlertLevelCritical,
			Description: fmt.Sprintf("Suspicious operations: %s at %s and %s at %s within %d minutes",
				newer.Location, newer.OperationDate.Format(descriptionTimeLayout),
				older.Location, older.OperationDate.Format(descriptionTimeLayout),
				minutes),
			Status: models.CardStatusBlocked,
		})
	}
	return findings
}

// BurstCount проверяет каждое окно из BurstSize подряд идущих операций.
// Пересекающиеся окна дают отдельные оповещения.
func (t Thresholds) BurstCount(history []*models.CardOperation) []Finding {
	size := t.BurstSize
	if size < 2 || len(history) < size {
		return nil
	}

	var findings []Finding
	for i := 0; i+size <= len(history); i++ {
		first, last := history[i], history[i+size-1]

		minutes := minutesBetween(first.OperationDate, last.OperationDate)
		if minutes > t.BurstWindowMinutes {
			continue
		}

		findings = append(findings, Finding{
			Rule:        RuleBurstCount,
			CardID:      first.CardID,
			Level:       models.AlertLevelCritical,
			Description: fmt.Sprintf("Multiple attempts detected: %d+ operations in %d minutes", size, minutes),
			Status:      models.CardStatusSuspended,
		})
	}
	return findings
}

// minutesBetween - модуль разницы в целых минутах, дробная часть отбрасывается
func minutesBetween(a, b time.Time) int64 {
	minutes := int64(a.Sub(b) / time.Minute)
	if minutes < 0 {
		return -minutes
	}
	return minutes
}

// ThresholdsFromConfig строит пороги из настроек сервиса
func ThresholdsFromConfig(cfg config.FraudConfig) Thresholds {
	return Thresholds{
		SuspiciousAmount:   cfg.SuspiciousAmount,
		RapidWindowMinutes: int64(cfg.RapidWindowMinutes),
		BurstWindowMinutes: int64(cfg.BurstWindowMinutes),
		BurstSize:          cfg.BurstSize,
	}
}
