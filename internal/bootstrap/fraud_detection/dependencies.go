package fraud_detection

import (
	"log"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/dispatch"
	"bank-fraud-pipeline/internal/fraud"
	"bank-fraud-pipeline/internal/kafka"
	"bank-fraud-pipeline/internal/redis"
	"bank-fraud-pipeline/internal/services"
	"bank-fraud-pipeline/internal/storage"
	"bank-fraud-pipeline/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для fraud detection service
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	StorageRepo   storage.FlaggedTransactionRepository
	RedisClient   *redis.Client
	KafkaProducer kafka.Producer
	Processor     services.TransactionProcessor
	KafkaConsumer kafka.Consumer
}

// InitializeDependencies инициализирует все зависимости для fraud detection service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Redis
	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Redis connection established")

	// Инициализация Kafka Producer для алертов и аналитики
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Движок правил и fan-out для помеченных транзакций
	engine := fraud.NewRuleEngine(redisClient, &cfg.Rules)
	dispatcher := dispatch.NewDispatcher(storageRepo, producer)

	processor := services.NewTransactionProcessor(
		redisClient,
		redisClient,
		engine,
		dispatcher,
		cfg.Rules.StoreTimeout,
	)

	// Инициализация Kafka Consumer
	consumer, err := kafka.NewConsumer(cfg, processor.ProcessMessage)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		StorageConn:   storageConn,
		StorageRepo:   storageRepo,
		RedisClient:   redisClient,
		KafkaProducer: producer,
		Processor:     processor,
		KafkaConsumer: consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
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
