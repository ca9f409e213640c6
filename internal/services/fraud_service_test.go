package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-fraud-system/internal/fraud"
	kafkamocks "card-fraud-system/internal/kafka/mocks"
	"card-fraud-system/internal/locker"
	"card-fraud-system/internal/metrics"
	"card-fraud-system/internal/models"
	redismocks "card-fraud-system/internal/redis/mocks"
	storagemocks "card-fraud-system/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fraudEnv struct {
	cards    *storagemocks.MockCardRegistry
	ledger   *storagemocks.MockOperationLedger
	alerts   *storagemocks.MockAlertSink
	producer *kafkamocks.MockProducer
	cache    *redismocks.MockClientInterface
	locker   *locker.KeyedMutex
	svc      FraudService
}

func newFraudEnv() *fraudEnv {
	e := &fraudEnv{
		cards:    new(storagemocks.MockCardRegistry),
		ledger:   new(storagemocks.MockOperationLedger),
		alerts:   new(storagemocks.MockAlertSink),
		producer: new(kafkamocks.MockProducer),
		cache:    new(redismocks.MockClientInterface),
		locker:   locker.NewKeyedMutex(),
	}
	pipeline := fraud.NewPipeline(e.ledger, e.cards, e.alerts, fraud.DefaultThresholds())
	e.svc = NewFraudService(pipeline, e.locker, e.producer, e.cache, metrics.NewMetricsCollector(), ServiceFraudDetection)
	return e
}

// Париж и Лондон с разницей 20 минут - правило быстрой смены места
func crossLocationHistory() []*models.CardOperation {
	return ops("card_1",
		opSpec{20 * time.Minute, 100, "London"},
		opSpec{0, 100, "Paris"},
	)
}

func TestFraudService_PublishesAlertsAndStatus(t *testing.T) {
	e := newFraudEnv()
	e.cards.On("GetCard", mock.Anything, "card_1").Return(debitCard("card_1", models.CardStatusActive, 10000), nil)
	e.ledger.On("ListOperations", mock.Anything, "card_1").Return(crossLocationHistory(), nil)
	echoAlert(e.alerts)
	e.cards.On("SetStatus", mock.Anything, "card_1", models.CardStatusBlocked).Return(true, nil)

	e.producer.On("SendAlertEvent", mock.MatchedBy(func(ev *models.KafkaAlertEvent) bool {
		return ev.Data.CardID == "card_1" && ev.Data.Level == models.AlertLevelCritical
	})).Return(nil).Once()
	e.producer.On("SendStatusEvent", mock.MatchedBy(func(ev *models.KafkaStatusEvent) bool {
		return ev.Data.PreviousStatus == models.CardStatusActive &&
			ev.Data.Status == models.CardStatusBlocked &&
			ev.Data.Source == models.StatusSourceDetector
	})).Return(nil).Once()
	e.cache.On("IncrementAlertStats", mock.Anything, models.AlertLevelCritical).Return(nil).Once()
	e.cache.On("IncrementCardAlertCount", mock.Anything, "card_1").Return(nil).Once()
	e.cache.On("CacheCardStatus", mock.Anything, "card_1", models.CardStatusBlocked).Return(nil).Once()

	result, err := e.svc.DetectFraud(context.Background(), "card_1")

	require.NoError(t, err)
	assert.Len(t, result.Alerts, 1)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
	e.producer.AssertExpectations(t)
	e.cache.AssertExpectations(t)
}

func TestFraudService_PublishFailuresDoNotFailDetection(t *testing.T) {
	e := newFraudEnv()
	e.cards.On("GetCard", mock.Anything, "card_1").Return(debitCard("card_1", models.CardStatusActive, 10000), nil)
	e.ledger.On("ListOperations", mock.Anything, "card_1").Return(crossLocationHistory(), nil)
	echoAlert(e.alerts)
	e.cards.On("SetStatus", mock.Anything, "card_1", models.CardStatusBlocked).Return(true, nil)

	e.producer.On("SendAlertEvent", mock.Anything).Return(errors.New("kafka down"))
	e.producer.On("SendStatusEvent", mock.Anything).Return(errors.New("kafka down"))
	e.cache.On("IncrementAlertStats", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	e.cache.On("IncrementCardAlertCount", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	e.cache.On("CacheCardStatus", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	result, err := e.svc.DetectFraud(context.Background(), "card_1")

	require.NoError(t, err)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
}

func TestFraudService_PartialApplicationPublishesAppliedFindings(t *testing.T) {
	e := newFraudEnv()
	history := ops("card_1",
		opSpec{20 * time.Minute, 6000, "London"},
		opSpec{0, 100, "Paris"},
	)
	dbErr := errors.New("database is locked")
	e.cards.On("GetCard", mock.Anything, "card_1").Return(debitCard("card_1", models.CardStatusActive, 10000), nil)
	e.ledger.On("ListOperations", mock.Anything, "card_1").Return(history, nil)
	// Первое оповещение (крупная сумма) сохраняется, второе падает
	echoAlert(e.alerts).Once()
	e.alerts.On("SaveAlert", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	e.producer.On("SendAlertEvent", mock.Anything).Return(nil).Once()
	e.cache.On("IncrementAlertStats", mock.Anything, models.AlertLevelWarning).Return(nil).Once()
	e.cache.On("IncrementCardAlertCount", mock.Anything, "card_1").Return(nil).Once()

	result, err := e.svc.DetectFraud(context.Background(), "card_1")

	assert.ErrorIs(t, err, dbErr)
	require.NotNil(t, result)
	assert.Len(t, result.Alerts, 1)
	assert.Equal(t, models.CardStatusActive, result.FinalStatus)
	e.cards.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	e.producer.AssertNotCalled(t, "SendStatusEvent", mock.Anything)
	e.producer.AssertExpectations(t)
	e.cache.AssertNotCalled(t, "CacheCardStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestFraudService_WithoutOptionalDependencies(t *testing.T) {
	cards := new(storagemocks.MockCardRegistry)
	ledger := new(storagemocks.MockOperationLedger)
	alerts := new(storagemocks.MockAlertSink)
	pipeline := fraud.NewPipeline(ledger, cards, alerts, fraud.DefaultThresholds())
	svc := NewFraudService(pipeline, locker.NewKeyedMutex(), nil, nil, metrics.NewMetricsCollector(), ServiceCardService)

	cards.On("GetCard", mock.Anything, "card_1").Return(debitCard("card_1", models.CardStatusActive, 10000), nil)
	ledger.On("ListOperations", mock.Anything, "card_1").Return(crossLocationHistory(), nil)
	echoAlert(alerts)
	cards.On("SetStatus", mock.Anything, "card_1", models.CardStatusBlocked).Return(true, nil)

	result, err := svc.DetectFraud(context.Background(), "card_1")

	require.NoError(t, err)
	assert.Equal(t, models.CardStatusBlocked, result.FinalStatus)
}

func TestFraudService_CardNotFound(t *testing.T) {
	e := newFraudEnv()
	e.cards.On("GetCard", mock.Anything, "missing").Return(nil, nil)

	result, err := e.svc.DetectFraud(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.Nil(t, result)
	e.producer.AssertNotCalled(t, "SendAlertEvent", mock.Anything)
}

func TestFraudService_DetectFraudWaitsForCardLock(t *testing.T) {
	e := newFraudEnv()

	unlock, err := e.locker.Lock(context.Background(), "card_1")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = e.svc.DetectFraud(ctx, "card_1")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	e.cards.AssertNotCalled(t, "GetCard", mock.Anything, mock.Anything)
}
