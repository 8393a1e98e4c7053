package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Rules  RulesConfig
	Auth   AuthConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers           []string
	TransactionTopic  string
	AlertTopic        string
	AnalyticsTopic    string
	ConsumerGroupID   string
	ConsumerBatchSize int
	ConsumerWorkers   int
}

type ServerConfig struct {
	IngestionPort      int
	FraudDetectionPort int
}

type RulesConfig struct {
	AbsoluteAmountThreshold float64       // Порог для счетов без истории
	AverageMultiplier       float64       // Кратность средней суммы
	FailedLoginThreshold    int           // Неудачных входов в окне до флага
	ActivityWindow          time.Duration // Окно недавней активности
	FailClosed              bool          // Флаговать при недоступности хранилища
	StoreTimeout            time.Duration // Таймаут на один вызов хранилища
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	AccountID string
	Password  string
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/fraud_pipeline.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:           []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			TransactionTopic:  getEnv("KAFKA_TRANSACTION_TOPIC", "bank.transactions.pending"),
			AlertTopic:        getEnv("KAFKA_ALERT_TOPIC", "bank.fraud.alerts"),
			AnalyticsTopic:    getEnv("KAFKA_ANALYTICS_TOPIC", "bank.fraud.analytics"),
			ConsumerGroupID:   getEnv("KAFKA_CONSUMER_GROUP", "fraud-pipeline-group"),
			ConsumerBatchSize: getEnvAsInt("KAFKA_CONSUMER_BATCH_SIZE", 10),
			ConsumerWorkers:   getEnvAsInt("KAFKA_CONSUMER_WORKERS", 2),
		},
		Server: ServerConfig{
			IngestionPort:      getEnvAsInt("INGESTION_SERVICE_PORT", 8080),
			FraudDetectionPort: getEnvAsInt("FRAUD_DETECTION_SERVICE_PORT", 8081),
		},
		Rules: RulesConfig{
			AbsoluteAmountThreshold: getEnvAsFloat("RULES_ABSOLUTE_AMOUNT_THRESHOLD", 5000),
			AverageMultiplier:       getEnvAsFloat("RULES_AVERAGE_MULTIPLIER", 3),
			FailedLoginThreshold:    getEnvAsInt("RULES_FAILED_LOGIN_THRESHOLD", 3),
			ActivityWindow:          getEnvAsDuration("RULES_ACTIVITY_WINDOW", 5*time.Minute),
			FailClosed:              getEnvAsBool("RULES_FAIL_CLOSED", false),
			StoreTimeout:            getEnvAsDuration("RULES_STORE_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
			TokenTTL:  getEnvAsDuration("JWT_TOKEN_TTL", time.Hour),
			AccountID: getEnv("AUTH_ACCOUNT_ID", "12345"),
			Password:  getEnv("AUTH_PASSWORD", "password123"),
		},
	}
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
