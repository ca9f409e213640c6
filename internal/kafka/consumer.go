package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"card-fraud-system/config"
	"card-fraud-system/internal/models"

	"github.com/IBM/sarama"
)

type ConsumerImpl struct {
	consumer sarama.ConsumerGroup
	topic    string
	handler  OperationHandler
}

func NewConsumer(cfg *config.Config, handler OperationHandler) (Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true
	config.Version = sarama.V2_8_0_0

	consumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	log.Println("Kafka consumer created successfully")
	return &ConsumerImpl{
		consumer: consumer,
		topic:    cfg.Kafka.OperationsTopic,
		handler:  handler,
	}, nil
}

func (c *ConsumerImpl) Start(ctx context.Context) error {
	topics := []string{c.topic}

	consumerHandler := &consumerGroupHandler{
		handler: c.handler,
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			if err := c.consumer.Consume(ctx, topics, consumerHandler); err != nil {
				log.Printf("Error from consumer: %v", err)
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case err := <-c.consumer.Errors():
				if err != nil {
					log.Printf("Consumer error: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()
	log.Println("Consumer context cancelled, shutting down...")
	wg.Wait()
	return c.consumer.Close()
}

func (c *ConsumerImpl) Close() error {
	return c.consumer.Close()
}

type consumerGroupHandler struct {
	handler OperationHandler
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			h.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage декодирует и обрабатывает сообщение. Ошибки только логируются:
// сообщение все равно помечается прочитанным.
func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var event models.KafkaOperationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		log.Printf("Error unmarshaling message: %v", err)
		return
	}

	if err := h.handler(ctx, &event); err != nil {
		log.Printf("Error handling message for card %s: %v", event.Data.CardID, err)
		// TODO: отправлять необработанные события в dead letter топик
	}
}
