package fraud

import (
	"context"
	"time"

	"card-fraud-system/internal/models"
	"card-fraud-system/internal/storage"
)

// Pipeline прогоняет правила по истории карты и применяет результаты:
// сохраняет оповещения и меняет статус карты.
//
// Правила вычисляются над одним снимком истории до любых записей. Затем находки
// применяются по порядку (A, B, C). Применение частичное: ошибка хранилища
// останавливает оставшиеся находки, уже примененные остаются в силе, а результат
// с ними возвращается вместе с ошибкой. Повторов внутри конвейера нет.
// Запрос SUSPENDED для заблокированной карты не применяется, оповещение сохраняется.
type Pipeline struct {
	ledger     storage.OperationLedger
	registry   storage.CardRegistry
	alerts     storage.AlertSink
	thresholds Thresholds
	now        func() time.Time
}

func NewPipeline(
	ledger storage.OperationLedger,
	registry storage.CardRegistry,
	alerts storage.AlertSink,
	thresholds Thresholds,
) *Pipeline {
	return &Pipeline{
		ledger:     ledger,
		registry:   registry,
		alerts:     alerts,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// Thresholds возвращает пороги, с которыми работает конвейер
func (p *Pipeline) Thresholds() Thresholds {
	return p.thresholds
}

// Detect запускает детекцию по карте. Пустая история не является ошибкой.
// После получения снимка отмена ctx уже не прерывает применение находок.
func (p *Pipeline) Detect(ctx context.Context, cardID string) (*models.DetectionResult, error) {
	card, err := p.registry.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	history, err := p.ledger.ListOperations(ctx, cardID)
	if err != nil {
		return nil, err
	}

	result := &models.DetectionResult{
		CardID:          cardID,
		OperationsCount: len(history),
		Alerts:          []*models.FraudAlert{},
		Transitions:     []models.StatusTransition{},
		InitialStatus:   card.Status,
		FinalStatus:     card.Status,
	}
	if len(history) == 0 {
		return result, nil
	}

	findings := p.thresholds.Evaluate(history)

	applyCtx := context.WithoutCancel(ctx)
	for _, f := range findings {
		if err := p.apply(applyCtx, cardID, f, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (p *Pipeline) apply(ctx context.Context, cardID string, f Finding, result *models.DetectionResult) error {
	alert, err := p.alerts.SaveAlert(ctx, &models.FraudAlert{
		Description: f.Description,
		Level:       f.Level,
		CardID:      cardID,
		CreatedAt:   p.now(),
	})
	if err != nil {
		return err
	}
	result.Alerts = append(result.Alerts, alert)

	if f.Status == "" {
		return nil
	}
	// BLOCKED конечен для автоматических переходов: приостановка его не снимает
	if f.Status == models.CardStatusSuspended && result.FinalStatus == models.CardStatusBlocked {
		return nil
	}

	found, err := p.registry.SetStatus(ctx, cardID, f.Status)
	if err != nil {
		return err
	}
	if !found {
		return ErrCardNotFound
	}

	result.Transitions = append(result.Transitions, models.StatusTransition{
		From: result.FinalStatus,
		To:   f.Status,
		Rule: f.Rule,
	})
	result.FinalStatus = f.Status
	return nil
}
