package ingestion

import (
	"log"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/kafka"
	"bank-fraud-pipeline/internal/services"
)

// Dependencies содержит все зависимости для ingestion service
type Dependencies struct {
	KafkaProducer      kafka.Producer
	TransactionService services.TransactionService
}

// InitializeDependencies инициализирует все зависимости для ingestion service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Создаем сервис приема транзакций
	transactionService := services.NewTransactionService(producer)

	return &Dependencies{
		KafkaProducer:      producer,
		TransactionService: transactionService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	return nil
}
