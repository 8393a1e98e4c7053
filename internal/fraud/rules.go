package fraud

import (
	"context"
	"log"
	"time"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/models"
	"bank-fraud-pipeline/internal/redis"
)

// Значения по умолчанию, совпадают с дефолтами конфигурации
const (
	DefaultAbsoluteAmountThreshold = 5000.0
	DefaultAverageMultiplier       = 3.0
	DefaultFailedLoginThreshold    = 3
	DefaultActivityWindow          = 5 * time.Minute
)

// RuleEngine оценивает транзакцию по правилам в фиксированном порядке приоритета:
// крупная сумма, затем неудачные входы, затем гео-несовпадение. Оценка
// останавливается на первом сработавшем правиле: только его причина
// попадает в вердикт.
type RuleEngine struct {
	activityStore redis.ActivityStore

	absoluteThreshold    float64
	averageMultiplier    float64
	failedLoginThreshold int
	window               time.Duration
	failClosed           bool
}

// NewRuleEngine создает движок правил с порогами из конфигурации
func NewRuleEngine(activityStore redis.ActivityStore, cfg *config.RulesConfig) *RuleEngine {
	return &RuleEngine{
		activityStore:        activityStore,
		absoluteThreshold:    cfg.AbsoluteAmountThreshold,
		averageMultiplier:    cfg.AverageMultiplier,
		failedLoginThreshold: cfg.FailedLoginThreshold,
		window:               cfg.ActivityWindow,
		failClosed:           cfg.FailClosed,
	}
}

// Evaluate возвращает вердикт для транзакции. stats содержит снимок агрегатов
// счета ПОСЛЕ учета текущей транзакции (результат RecordTransaction); прежняя
// средняя восстанавливается из него. stats == nil означает, что обновление
// статистики не удалось: правило крупной суммы неубедительно и разрешается
// политикой fail-open/fail-closed, как и ошибка запроса недавней активности.
func (e *RuleEngine) Evaluate(ctx context.Context, tx *models.Transaction, stats *models.AccountStats) *models.Verdict {
	// Правило 1: необычно крупная сумма
	if stats == nil {
		log.Printf("Rule LARGE_WITHDRAWAL inconclusive for transaction %s: no stats snapshot", tx.TransactionID)
		if e.failClosed {
			return models.Flagged(models.ReasonLargeWithdrawal)
		}
	} else if e.exceedsWithdrawalLimit(tx, stats) {
		return models.Flagged(models.ReasonLargeWithdrawal)
	}

	// Правила 2 и 3 читают одно окно недавней активности
	now := time.Now()
	events, err := e.activityStore.QueryRecent(ctx, tx.AccountID, now.Add(-e.window), now)
	if err != nil {
		log.Printf("Rules TOO_MANY_FAILED_LOGINS/GEO_MISMATCH inconclusive for transaction %s: %v", tx.TransactionID, err)
		if e.failClosed {
			return models.Flagged(models.ReasonTooManyFailedLogins)
		}
		return models.NotFlagged()
	}

	// Правило 2: слишком много неудачных входов в окне
	failures := 0
	for _, event := range events {
		if event.Status == models.LoginStatusFail {
			failures++
		}
	}
	if failures >= e.failedLoginThreshold {
		return models.Flagged(models.ReasonTooManyFailedLogins)
	}

	// Правило 3: более одного региона среди недавних событий и текущей транзакции
	regions := make(map[string]struct{})
	if tx.GeoRegion != "" {
		regions[tx.GeoRegion] = struct{}{}
	}
	for _, event := range events {
		if event.GeoRegion != "" {
			regions[event.GeoRegion] = struct{}{}
		}
	}
	if len(regions) > 1 {
		return models.Flagged(models.ReasonGeoMismatch)
	}

	return models.NotFlagged()
}

// exceedsWithdrawalLimit проверяет сумму против прежней средней по счету.
// Снимок уже включает текущую транзакцию, поэтому прежняя средняя
// восстанавливается вычитанием; для счета без истории действует
// абсолютный порог. Сравнение строгое: сумма, равная порогу, не флагуется.
func (e *RuleEngine) exceedsWithdrawalLimit(tx *models.Transaction, stats *models.AccountStats) bool {
	priorCount := stats.TransactionCount - 1
	if priorCount <= 0 {
		return tx.Amount > e.absoluteThreshold
	}
	priorAverage := (stats.TotalAmount - tx.Amount) / float64(priorCount)
	return tx.Amount > e.averageMultiplier*priorAverage
}
