package fraud

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-fraud-system/internal/models"
	storagemocks "card-fraud-system/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pipelineMocks struct {
	ledger   *storagemocks.MockOperationLedger
	registry *storagemocks.MockCardRegistry
	alerts   *storagemocks.MockAlertSink
}

func newTestPipeline() (*Pipeline, *pipelineMocks) {
	m := &pipelineMocks{
		ledger:   new(storagemocks.MockOperationLedger),
		registry: new(storagemocks.MockCardRegistry),
		alerts:   new(storagemocks.MockAlertSink),
	}
	p := NewPipeline(m.ledger, m.registry, m.alerts, DefaultThresholds())
	p.now = func() time.Time { return baseTime.Add(24 * time.Hour) }
	return p, m
}

func activeCard() *models.Card {
	return &models.Card{
		ID:      "card_1",
		Status:  models.CardStatusActive,
		Variant: models.DebitVariant{DailyLimit: decimal.NewFromInt(10000)},
	}
}

// echoSave возвращает сохраненное оповещение с назначенным id
func echoSave(m *pipelineMocks) {
	m.alerts.On("SaveAlert", mock.Anything, mock.AnythingOfType("*models.FraudAlert")).
		Return(func(_ context.Context, a *models.FraudAlert) *models.FraudAlert {
			saved := *a
			saved.ID = "alert_" + a.Description[:4]
			return &saved
		}, nil)
}

func TestPipeline_Detect_CardNotFound(t *testing.T) {
	p, m := newTestPipeline()
	m.registry.On("GetCard", mock.Anything, "missing").Return(nil, nil)

	result, err := p.Detect(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.Nil(t, result)
	m.ledger.AssertNotCalled(t, "ListOperations")
}

func TestPipeline_Detect_EmptyHistoryIsNoOp(t *testing.T) {
	p, m := newTestPipeline()
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return([]*models.CardOperation{}, nil)

	result, err := p.Detect(context.Background(), "card_1")

	require.NoError(t, err)
	assert.Equal(t, 0, result.OperationsCount)
	assert.Empty(t, result.Alerts)
	assert.False(t, result.StatusChanged())
	m.alerts.AssertNotCalled(t, "SaveAlert")
	m.registry.AssertNotCalled(t, "SetStatus")
}

func TestPipeline_Detect_RapidCrossLocationBlocksCard(t *testing.T) {
	p, m := newTestPipeline()
	ops := history(
		opSpec{20 * time.Minute, "10", "London"},
		opSpec{0, "10", "Paris"},
	)
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(ops, nil)
	echoSave(m)
	m.registry.On("SetStatus", mock.Anything, "card_1", models.CardStatusBlocked).Return(true, nil).Once()

	result, err := p.Detect(context.Background(), "card_1")

	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, result.Alerts[0].Level)
	assert.Equal(t, baseTime.Add(24*time.Hour), result.Alerts[0].CreatedAt)
	assert.NotEmpty(t, result.Alerts[0].ID)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
	assert.True(t, result.StatusChanged())
	m.registry.AssertExpectations(t)
}

func TestPipeline_Detect_HighAmountLeavesStatus(t *testing.T) {
	p, m := newTestPipeline()
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(history(opSpec{0, "6000", "Paris"}), nil)
	echoSave(m)

	result, err := p.Detect(context.Background(), "card_1")

	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertLevelWarning, result.Alerts[0].Level)
	assert.Equal(t, models.CardStatusActive, result.FinalStatus)
	m.registry.AssertNotCalled(t, "SetStatus")
}

func TestPipeline_Detect_BlockOverridesLaterSuspend(t *testing.T) {
	p, m := newTestPipeline()
	// London/Paris за 10 минут (блокировка) и 5 операций за 40 минут (приостановка)
	ops := history(
		opSpec{40 * time.Minute, "10", "London"},
		opSpec{30 * time.Minute, "10", "Paris"},
		opSpec{20 * time.Minute, "10", "Paris"},
		opSpec{10 * time.Minute, "10", "Paris"},
		opSpec{0, "10", "Paris"},
	)
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(ops, nil)
	echoSave(m)

	var applied []models.CardStatus
	m.registry.On("SetStatus", mock.Anything, "card_1", mock.AnythingOfType("models.CardStatus")).
		Run(func(args mock.Arguments) { applied = append(applied, args.Get(2).(models.CardStatus)) }).
		Return(true, nil)

	result, err := p.Detect(context.Background(), "card_1")

	require.NoError(t, err)
	assert.Equal(t, []models.CardStatus{models.CardStatusBlocked}, applied)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
	require.Len(t, result.Transitions, 1)
	assert.Equal(t, RuleRapidCrossLocation, result.Transitions[0].Rule)
	// Оповещение о всплеске сохраняется, хотя статус не меняется
	require.Len(t, result.Alerts, 2)
	m.alerts.AssertNumberOfCalls(t, "SaveAlert", 2)
}

func TestPipeline_Detect_BurstOnBlockedCardKeepsBlocked(t *testing.T) {
	p, m := newTestPipeline()
	card := activeCard()
	card.Status = models.CardStatusBlocked
	ops := history(
		opSpec{40 * time.Minute, "10", "Paris"},
		opSpec{30 * time.Minute, "10", "Paris"},
		opSpec{20 * time.Minute, "10", "Paris"},
		opSpec{10 * time.Minute, "10", "Paris"},
		opSpec{0, "10", "Paris"},
	)
	m.registry.On("GetCard", mock.Anything, "card_1").Return(card, nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(ops, nil)
	echoSave(m)

	result, err := p.Detect(context.Background(), "card_1")

	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.CardStatusBlocked, result.InitialStatus)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
	assert.Empty(t, result.Transitions)
	m.registry.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Detect_TwiceDuplicatesAlerts(t *testing.T) {
	p, m := newTestPipeline()
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(history(opSpec{0, "7000", "Paris"}), nil)
	echoSave(m)

	first, err := p.Detect(context.Background(), "card_1")
	require.NoError(t, err)
	second, err := p.Detect(context.Background(), "card_1")
	require.NoError(t, err)

	assert.Len(t, first.Alerts, 1)
	assert.Len(t, second.Alerts, 1)
	m.alerts.AssertNumberOfCalls(t, "SaveAlert", 2)
}

func TestPipeline_Detect_StorageFailureStopsRemainingFindings(t *testing.T) {
	p, m := newTestPipeline()
	ops := history(
		opSpec{40 * time.Minute, "6000", "London"},
		opSpec{30 * time.Minute, "10", "Paris"},
		opSpec{20 * time.Minute, "10", "Paris"},
		opSpec{10 * time.Minute, "10", "Paris"},
		opSpec{0, "10", "Paris"},
	)
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(ops, nil)

	storageErr := errors.New("disk full")
	m.alerts.On("SaveAlert", mock.Anything, mock.MatchedBy(func(a *models.FraudAlert) bool {
		return a.Level == models.AlertLevelWarning
	})).Return(&models.FraudAlert{ID: "alert_1", Level: models.AlertLevelWarning, CardID: "card_1"}, nil).Once()
	m.alerts.On("SaveAlert", mock.Anything, mock.MatchedBy(func(a *models.FraudAlert) bool {
		return a.Level == models.AlertLevelCritical
	})).Return(nil, storageErr).Once()

	result, err := p.Detect(context.Background(), "card_1")

	// Ошибка возвращается без изменений, первое оповещение уже применено
	assert.Equal(t, storageErr, err)
	require.NotNil(t, result)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, models.AlertLevelWarning, result.Alerts[0].Level)
	assert.Equal(t, models.CardStatusActive, result.FinalStatus)
	m.registry.AssertNotCalled(t, "SetStatus")
	m.alerts.AssertNumberOfCalls(t, "SaveAlert", 2)
}

func TestPipeline_Detect_LedgerErrorPropagates(t *testing.T) {
	p, m := newTestPipeline()
	ledgerErr := errors.New("ledger unavailable")
	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").Return(nil, ledgerErr)

	result, err := p.Detect(context.Background(), "card_1")

	assert.Equal(t, ledgerErr, err)
	assert.Nil(t, result)
}

func TestPipeline_Detect_CancelledAfterSnapshotStillCompletes(t *testing.T) {
	p, m := newTestPipeline()
	ctx, cancel := context.WithCancel(context.Background())

	m.registry.On("GetCard", mock.Anything, "card_1").Return(activeCard(), nil)
	m.ledger.On("ListOperations", mock.Anything, "card_1").
		Run(func(mock.Arguments) { cancel() }).
		Return(history(opSpec{20 * time.Minute, "10", "London"}, opSpec{0, "10", "Paris"}), nil)
	m.alerts.On("SaveAlert", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
		Return(&models.FraudAlert{ID: "alert_1"}, nil)
	m.registry.On("SetStatus", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), "card_1", models.CardStatusBlocked).
		Return(true, nil)

	result, err := p.Detect(ctx, "card_1")

	require.NoError(t, err)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
}
