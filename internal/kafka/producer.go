package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/models"

	"github.com/IBM/sarama"
)

type ProducerImpl struct {
	producer         sarama.SyncProducer
	transactionTopic string
	alertTopic       string
	analyticsTopic   string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Println("Kafka producer created successfully")
	return &ProducerImpl{
		producer:         producer,
		transactionTopic: cfg.Kafka.TransactionTopic,
		alertTopic:       cfg.Kafka.AlertTopic,
		analyticsTopic:   cfg.Kafka.AnalyticsTopic,
	}, nil
}

// SendTransaction ставит транзакцию в очередь на оценку.
// Ключом сообщения служит account_id, чтобы транзакции одного счета попадали
// в одну партицию.
func (p *ProducerImpl) SendTransaction(tx *models.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	return p.send(p.transactionTopic, tx.AccountID, data)
}

// SendAlert публикует оповещение в топик алертов
func (p *ProducerImpl) SendAlert(alert *models.AlertMessage) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	return p.send(p.alertTopic, alert.AccountID, data)
}

// SendAnalyticsRecord выгружает обогащенную запись в аналитический топик.
// Запись завершается переводом строки: сток читает топик как NDJSON.
func (p *ProducerImpl) SendAnalyticsRecord(record *models.AnalyticsRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics record: %w", err)
	}
	return p.send(p.analyticsTopic, record.AccountID, append(data, '\n'))
}

func (p *ProducerImpl) send(topic, key string, data []byte) error {
	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", topic, err)
	}

	log.Printf("Message sent to topic %s, partition %d, offset %d", topic, partition, offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
