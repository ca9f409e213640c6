package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"card-fraud-system/config"
	"card-fraud-system/internal/models"

	"github.com/IBM/sarama"
)

type ProducerImpl struct {
	producer        sarama.SyncProducer
	operationsTopic string
	alertsTopic     string
	statusTopic     string
}

// NewProducerConfig возвращает настройки sarama для синхронного продюсера
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	return config
}

func NewProducer(cfg *config.Config) (Producer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return NewProducerFromSarama(producer, cfg), nil
}

// NewProducerFromSarama оборачивает готовый sarama.SyncProducer
func NewProducerFromSarama(producer sarama.SyncProducer, cfg *config.Config) *ProducerImpl {
	return &ProducerImpl{
		producer:        producer,
		operationsTopic: cfg.Kafka.OperationsTopic,
		alertsTopic:     cfg.Kafka.AlertsTopic,
		statusTopic:     cfg.Kafka.StatusTopic,
	}
}

func (p *ProducerImpl) SendOperationEvent(event *models.KafkaOperationEvent) error {
	return p.send(p.operationsTopic, event.Data.CardID, event)
}

func (p *ProducerImpl) SendAlertEvent(event *models.KafkaAlertEvent) error {
	return p.send(p.alertsTopic, event.Data.CardID, event)
}

func (p *ProducerImpl) SendStatusEvent(event *models.KafkaStatusEvent) error {
	return p.send(p.statusTopic, event.Data.CardID, event)
}

// send публикует событие с ключом по id карты: события одной карты попадают
// в одну партицию и читаются в порядке записи
func (p *ProducerImpl) send(topic, cardID string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(cardID),
		Value:     sarama.StringEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Printf("Message sent to topic %s, partition %d, offset %d", topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
