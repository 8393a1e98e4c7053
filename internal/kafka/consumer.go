package kafka

import (
	"context"
	"fmt"
	"log"
	"sync"

	"bank-fraud-pipeline/internal/config"

	"github.com/IBM/sarama"
)

type ConsumerImpl struct {
	consumer  sarama.ConsumerGroup
	topic     string
	workers   int
	batchSize int
	handler   MessageHandler
}

func NewConsumer(cfg *config.Config, handler MessageHandler) (Consumer, error) {
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
		consumer:  consumer,
		topic:     cfg.Kafka.TransactionTopic,
		workers:   cfg.Kafka.ConsumerWorkers,
		batchSize: cfg.Kafka.ConsumerBatchSize,
		handler:   handler,
	}, nil
}

// Start запускает воркеров-потребителей и блокируется до отмены контекста.
// Каждый воркер обрабатывает свои партиции независимо, поэтому транзакции
// одного счета из разных партиций могут обрабатываться параллельно.
func (c *ConsumerImpl) Start(ctx context.Context) error {
	topics := []string{c.topic}

	consumerHandler := &consumerGroupHandler{
		handler:   c.handler,
		batchSize: c.batchSize,
	}

	wg := &sync.WaitGroup{}
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				if err := c.consumer.Consume(ctx, topics, consumerHandler); err != nil {
					log.Printf("Error from consumer worker %d: %v", workerID, err)
					return
				}
				if ctx.Err() != nil {
					return
				}
			}
		}(i)
	}

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
	handler   MessageHandler
	batchSize int
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim забирает ограниченные батчи и обрабатывает сообщения батча
// строго последовательно. Сообщение подтверждается после попытки обработки
// независимо от её исхода: ошибки шагов обработчик ловит и логирует сам,
// повторная доставка возможна только при падении воркера до MarkMessage.
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		batch, ok := h.nextBatch(session, claim)
		if !ok {
			return nil
		}

		for _, message := range batch {
			if err := h.handler(session.Context(), message.Value); err != nil {
				log.Printf("Error handling message at offset %d: %v", message.Offset, err)
			}
			session.MarkMessage(message, "")
		}
	}
}

// nextBatch блокируется до первого сообщения, затем добирает до batchSize
// без ожидания. false означает закрытие claim или отмену сессии.
func (h *consumerGroupHandler) nextBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) ([]*sarama.ConsumerMessage, bool) {
	batch := make([]*sarama.ConsumerMessage, 0, h.batchSize)

	select {
	case message := <-claim.Messages():
		if message == nil {
			return nil, false
		}
		batch = append(batch, message)
	case <-session.Context().Done():
		return nil, false
	}

	for len(batch) < h.batchSize {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return batch, true
			}
			batch = append(batch, message)
		default:
			return batch, true
		}
	}
	return batch, true
}
