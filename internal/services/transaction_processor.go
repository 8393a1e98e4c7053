package services

import (
	"context"
	"log"
	"time"

	"bank-fraud-pipeline/internal/dispatch"
	"bank-fraud-pipeline/internal/logger"
	"bank-fraud-pipeline/internal/models"
	"bank-fraud-pipeline/internal/redis"
)

// TransactionProcessorImpl реализует обработку одного сообщения очереди:
// валидация, обновление агрегатов, оценка правил, запись события активности
// и fan-out для помеченных транзакций. Любая ошибка шага логируется и не
// прерывает остальные шаги: сообщение в очереди подтверждается в любом случае.
type TransactionProcessorImpl struct {
	statsStore    redis.StatsStore
	activityStore redis.ActivityStore
	engine        RuleEvaluator
	dispatcher    dispatch.TransactionDispatcher
	storeTimeout  time.Duration
}

// NewTransactionProcessor создает новый обработчик сообщений очереди
func NewTransactionProcessor(
	statsStore redis.StatsStore,
	activityStore redis.ActivityStore,
	engine RuleEvaluator,
	dispatcher dispatch.TransactionDispatcher,
	storeTimeout time.Duration,
) TransactionProcessor {
	return &TransactionProcessorImpl{
		statsStore:    statsStore,
		activityStore: activityStore,
		engine:        engine,
		dispatcher:    dispatcher,
		storeTimeout:  storeTimeout,
	}
}

// ProcessMessage обрабатывает одно сырое сообщение очереди
func (p *TransactionProcessorImpl) ProcessMessage(ctx context.Context, raw []byte) error {
	tx, err := models.ParseTransaction(raw)
	if err != nil {
		// Некорректное сообщение отбрасывается: повторная доставка не исправит его
		log.Printf("Dropping malformed message: %v", err)
		logger.LogEvent(logger.EventMalformedDropped, "fraud-detection-service", "kafka", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	logger.LogEvent(logger.EventKafkaReceived, "fraud-detection-service", "kafka", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"account_id":     tx.AccountID,
	})

	// (a) Атомарное обновление агрегатов счета; снимок нужен движку правил
	now := time.Now()
	statsCtx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	stats, err := p.statsStore.RecordTransaction(statsCtx, tx.AccountID, tx.Amount, now)
	cancel()
	if err != nil {
		log.Printf("Failed to update stats for account %s (transaction %s): %v", tx.AccountID, tx.TransactionID, err)
		stats = nil
	} else {
		logger.LogEvent(logger.EventStatsUpdated, "fraud-detection-service", "redis", map[string]interface{}{
			"account_id":        tx.AccountID,
			"transaction_count": stats.TransactionCount,
		})
	}

	// (b) Оценка правил по снимку статистики и недавней активности
	evalCtx, cancel := context.WithTimeout(ctx, p.storeTimeout)
	verdict := p.engine.Evaluate(evalCtx, tx, stats)
	cancel()

	// (c) Запись события активности после оценки, чтобы транзакция
	// не учитывала саму себя в гео- и login-правилах
	if tx.GeoRegion != "" && tx.LoginStatus != "" {
		event := &models.ActivityEvent{
			AccountID: tx.AccountID,
			EventTime: now.UnixMilli(),
			GeoRegion: tx.GeoRegion,
			Status:    tx.LoginStatus,
		}
		eventCtx, cancel := context.WithTimeout(ctx, p.storeTimeout)
		if err := p.activityStore.RecordEvent(eventCtx, event); err != nil {
			log.Printf("Failed to record activity event for account %s (transaction %s): %v", tx.AccountID, tx.TransactionID, err)
		} else {
			logger.LogEvent(logger.EventActivityRecorded, "fraud-detection-service", "redis", map[string]interface{}{
				"account_id": tx.AccountID,
				"geo_region": tx.GeoRegion,
				"status":     tx.LoginStatus,
			})
		}
		cancel()
	}

	// (d) Fan-out только для помеченных транзакций
	if verdict.Flagged {
		log.Printf("Transaction %s flagged: account=%s, reason=%s", tx.TransactionID, tx.AccountID, verdict.Reason)
		logger.LogEvent(logger.EventTransactionFlagged, "fraud-detection-service", "analyzer", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"account_id":     tx.AccountID,
			"reason":         string(verdict.Reason),
		})
		p.dispatcher.Dispatch(ctx, tx, verdict)
	}

	return nil
}
