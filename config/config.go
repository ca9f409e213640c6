package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DetectionModeSync  = "sync"
	DetectionModeAsync = "async"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Fraud  FraudConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host             string
	Port             string
	Password         string
	StatusTTLSeconds int
	LockTTLSeconds   int
}

type KafkaConfig struct {
	Brokers         []string
	OperationsTopic string
	AlertsTopic     string
	StatusTopic     string
	ConsumerGroupID string
}

type ServerConfig struct {
	CardServicePort    int
	FraudDetectionPort int
	GRPCPort           int
	MetricsPort        int
}

// FraudConfig содержит пороги правил и политику допуска операций
type FraudConfig struct {
	SuspiciousAmount    decimal.Decimal
	RapidWindowMinutes  int
	BurstWindowMinutes  int
	BurstSize           int
	DetectionMode       string
	RequireActiveStatus bool
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mode := getEnv("FRAUD_DETECTION_MODE", DetectionModeSync)
	if mode != DetectionModeSync && mode != DetectionModeAsync {
		log.Printf("Unknown FRAUD_DETECTION_MODE %q, falling back to %s", mode, DetectionModeSync)
		mode = DetectionModeSync
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/card_fraud.db"),
		},
		Redis: RedisConfig{
			Host:             getEnv("REDIS_HOST", "localhost"),
			Port:             getEnv("REDIS_PORT", "6379"),
			Password:         getEnv("REDIS_PASSWORD", ""),
			StatusTTLSeconds: getEnvAsInt("REDIS_STATUS_TTL_SECONDS", 300),
			LockTTLSeconds:   getEnvAsInt("REDIS_LOCK_TTL_SECONDS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:         getEnvAsList("KAFKA_BROKERS", []string{"localhost:9092"}),
			OperationsTopic: getEnv("KAFKA_OPERATIONS_TOPIC", "cards.operations.recorded"),
			AlertsTopic:     getEnv("KAFKA_ALERTS_TOPIC", "cards.alerts.raised"),
			StatusTopic:     getEnv("KAFKA_STATUS_TOPIC", "cards.status.changed"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "fraud-detection-group"),
		},
		Server: ServerConfig{
			CardServicePort:    getEnvAsInt("CARD_SERVICE_PORT", 8080),
			FraudDetectionPort: getEnvAsInt("FRAUD_DETECTION_SERVICE_PORT", 8081),
			GRPCPort:           getEnvAsInt("GRPC_PORT", 9090),
			MetricsPort:        getEnvAsInt("METRICS_PORT", 9100),
		},
		Fraud: FraudConfig{
			SuspiciousAmount:    getEnvAsDecimal("FRAUD_SUSPICIOUS_AMOUNT", decimal.NewFromInt(5000)),
			RapidWindowMinutes:  getEnvAsInt("FRAUD_RAPID_WINDOW_MINUTES", 30),
			BurstWindowMinutes:  getEnvAsInt("FRAUD_BURST_WINDOW_MINUTES", 60),
			BurstSize:           getEnvAsInt("FRAUD_BURST_SIZE", 5),
			DetectionMode:       mode,
			RequireActiveStatus: getEnvAsBool("ADMISSION_REQUIRE_ACTIVE", true),
		},
	}
}

// IsAsync сообщает, что детекция выполняется fraud-detection-service через Kafka
func (c *Config) IsAsync() bool {
	return c.Fraud.DetectionMode == DetectionModeAsync
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList разбирает список через запятую (например, KAFKA_BROKERS=a:9092,b:9092)
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
