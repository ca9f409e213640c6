package fraud_detection

import (
	"log"

	"card-fraud-system/config"
	"card-fraud-system/internal/fraud"
	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/locker"
	"card-fraud-system/internal/metrics"
	"card-fraud-system/internal/redis"
	"card-fraud-system/internal/services"
	"card-fraud-system/internal/storage"
	"card-fraud-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для fraud detection service
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	Repos         *storage.Repositories
	RedisClient   *redis.Client  // nil, если Redis недоступен
	KafkaProducer kafka.Producer // nil, если события оповещений не публикуются
	KafkaConsumer kafka.Consumer
	Metrics       *metrics.MetricsCollector
	FraudService  services.FraudService
	AlertService  services.AlertService
}

// InitializeDependencies инициализирует все зависимости для fraud detection service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	repos := sqlite.NewRepositories(storageConn)

	deps := &Dependencies{
		StorageConn: storageConn,
		Repos:       repos,
		Metrics:     metrics.NewMetricsCollector(),
	}

	// Инициализация Redis
	log.Println("Connecting to Redis...")
	var cache redis.ClientInterface
	var cardLocker locker.CardLocker
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (detection is serialized only inside this process): %v", err)
		cardLocker = locker.NewKeyedMutex()
	} else {
		log.Println("Redis connection established")
		deps.RedisClient = redisClient
		cache = redisClient
		cardLocker = redisClient.CardLock()
	}

	// Producer нужен только для событий оповещений и статусов
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Printf("Warning: Failed to create Kafka producer (alert events will not be published): %v", err)
	} else {
		deps.KafkaProducer = producer
	}

	pipeline := fraud.NewPipeline(repos.Operations, repos.Cards, repos.Alerts, fraud.ThresholdsFromConfig(cfg.Fraud))
	deps.FraudService = services.NewFraudService(pipeline, cardLocker, deps.KafkaProducer, cache, deps.Metrics, services.ServiceFraudDetection)
	deps.AlertService = services.NewAlertService(repos.Alerts, cache)

	// Инициализация Kafka Consumer
	log.Println("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg, newOperationHandler(deps.FraudService, cfg.Kafka.OperationsTopic))
	if err != nil {
		deps.Close()
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")
	deps.KafkaConsumer = consumer

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		// Start закрывает группу сам при отмене контекста, повторное закрытие только логируем
		if err := d.KafkaConsumer.Close(); err != nil {
			log.Printf("Kafka consumer close: %v", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
