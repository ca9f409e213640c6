package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"card-fraud-system/config"
	"card-fraud-system/internal/models"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKafkaConfig() *config.Config {
	return &config.Config{
		Kafka: config.KafkaConfig{
			OperationsTopic: "ops",
			AlertsTopic:     "alerts",
			StatusTopic:     "status",
		},
	}
}

func expectCardID(cardID string) saramamocks.ValueChecker {
	return func(val []byte) error {
		var envelope struct {
			Data struct {
				CardID string `json:"card_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(val, &envelope); err != nil {
			return err
		}
		if envelope.Data.CardID != cardID {
			return fmt.Errorf("unexpected card id %q", envelope.Data.CardID)
		}
		return nil
	}
}

func TestProducer_SendEvents(t *testing.T) {
	sp := saramamocks.NewSyncProducer(t, NewProducerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCardID("card_1"))
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCardID("card_1"))
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(expectCardID("card_1"))

	producer := NewProducerFromSarama(sp, testKafkaConfig())
	defer producer.Close()

	err := producer.SendOperationEvent(&models.KafkaOperationEvent{
		EventID:   "evt_1",
		EventType: models.EventTypeOperationRecorded,
		Timestamp: time.Now(),
		Data: models.KafkaOperationData{
			OperationID: "op_1",
			CardID:      "card_1",
			Amount:      decimal.NewFromInt(100),
			Type:        models.OperationPayment,
			Location:    "Paris",
		},
	})
	require.NoError(t, err)

	err = producer.SendAlertEvent(&models.KafkaAlertEvent{
		EventID:   "evt_2",
		EventType: models.EventTypeAlertRaised,
		Data:      models.KafkaAlertData{AlertID: "alert_1", CardID: "card_1", Level: models.AlertLevelWarning},
	})
	require.NoError(t, err)

	err = producer.SendStatusEvent(&models.KafkaStatusEvent{
		EventID:   "evt_3",
		EventType: models.EventTypeStatusChanged,
		Data: models.KafkaStatusData{
			CardID:         "card_1",
			PreviousStatus: models.CardStatusActive,
			Status:         models.CardStatusBlocked,
			Source:         models.StatusSourceDetector,
		},
	})
	require.NoError(t, err)
}

func TestProducer_SendFails(t *testing.T) {
	sp := saramamocks.NewSyncProducer(t, NewProducerConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	producer := NewProducerFromSarama(sp, testKafkaConfig())
	defer producer.Close()

	err := producer.SendAlertEvent(&models.KafkaAlertEvent{Data: models.KafkaAlertData{CardID: "card_1"}})
	assert.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestConsumerHandler_HandleMessage(t *testing.T) {
	var received *models.KafkaOperationEvent
	h := &consumerGroupHandler{
		handler: func(ctx context.Context, event *models.KafkaOperationEvent) error {
			received = event
			return nil
		},
	}

	payload, err := json.Marshal(&models.KafkaOperationEvent{
		EventID:   "evt_9",
		EventType: models.EventTypeOperationRecorded,
		Data: models.KafkaOperationData{
			OperationID: "op_9",
			CardID:      "card_9",
			Amount:      decimal.RequireFromString("42.50"),
			Type:        models.OperationTransfer,
			Location:    "Berlin",
		},
	})
	require.NoError(t, err)

	h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: payload})

	require.NotNil(t, received)
	assert.Equal(t, "card_9", received.Data.CardID)
	assert.True(t, decimal.RequireFromString("42.5").Equal(received.Data.Amount))
}

func TestConsumerHandler_SkipsBrokenMessages(t *testing.T) {
	calls := 0
	h := &consumerGroupHandler{
		handler: func(ctx context.Context, event *models.KafkaOperationEvent) error {
			calls++
			return errors.New("detection failed")
		},
	}

	// Невалидный JSON до обработчика не доходит
	h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{broken")})
	assert.Equal(t, 0, calls)

	// Ошибка обработчика не паникует и не повторяется
	h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"data":{"card_id":"card_1"}}`)})
	assert.Equal(t, 1, calls)
}
