package card_service

import (
	"fmt"
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

// Dependencies содержит все зависимости для card service
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	Repos         *storage.Repositories
	RedisClient   *redis.Client  // nil, если Redis недоступен
	KafkaProducer kafka.Producer // nil, если Kafka недоступна в синхронном режиме
	Metrics       *metrics.MetricsCollector

	CustomerService  services.CustomerService
	CardService      services.CardService
	OperationService services.OperationService
	FraudService     services.FraudService
	AlertService     services.AlertService
	ReportService    services.ReportService
}

// InitializeDependencies инициализирует все зависимости для card service.
// Redis опционален всегда, Kafka обязательна только при асинхронной детекции.
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
		log.Printf("Warning: Failed to connect to Redis (status cache and distributed lock disabled): %v", err)
		if cfg.IsAsync() {
			log.Println("Warning: async detection without Redis does not serialize detection across services")
		}
		cardLocker = locker.NewKeyedMutex()
	} else {
		log.Println("Redis connection established")
		deps.RedisClient = redisClient
		cache = redisClient
		cardLocker = redisClient.CardLock()
	}

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		if cfg.IsAsync() {
			deps.Close()
			return nil, fmt.Errorf("kafka is required for async detection: %w", err)
		}
		log.Printf("Warning: Failed to connect to Kafka (events will not be published): %v", err)
	} else {
		log.Println("Kafka producer connected successfully")
		deps.KafkaProducer = producer
	}

	pipeline := fraud.NewPipeline(repos.Operations, repos.Cards, repos.Alerts, fraud.ThresholdsFromConfig(cfg.Fraud))

	deps.FraudService = services.NewFraudService(pipeline, cardLocker, deps.KafkaProducer, cache, deps.Metrics, services.ServiceCardService)
	deps.CustomerService = services.NewCustomerService(repos.Customers)
	deps.CardService = services.NewCardService(repos.Cards, repos.Customers, cardLocker, deps.KafkaProducer, cache)
	deps.OperationService = services.NewOperationService(
		repos.Cards,
		repos.Operations,
		deps.FraudService,
		cardLocker,
		deps.KafkaProducer,
		deps.Metrics,
		services.AdmissionPolicy{
			RequireActive:  cfg.Fraud.RequireActiveStatus,
			AsyncDetection: cfg.IsAsync(),
		},
	)
	deps.AlertService = services.NewAlertService(repos.Alerts, cache)
	deps.ReportService = services.NewReportService(repos.Reports)

	log.Printf("Detection mode: %s, require active status: %t", cfg.Fraud.DetectionMode, cfg.Fraud.RequireActiveStatus)

	return deps, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
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
