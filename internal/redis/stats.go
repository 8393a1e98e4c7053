package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bank-fraud-pipeline/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix = "stats:account:"

	statsFieldCount       = "transaction_count"
	statsFieldTotal       = "total_amount"
	statsFieldLastUpdated = "last_updated"
)

func statsKey(accountID string) string {
	return statsKeyPrefix + accountID
}

// RecordTransaction атомарно инкрементирует счетчик и сумму по счету и
// возвращает снимок статистики после обновления. Инкременты выполняются
// одной MULTI/EXEC транзакцией, поэтому параллельные воркеры не теряют
// обновления; средняя сумма всегда вычисляется из count и total.
func (c *Client) RecordTransaction(ctx context.Context, accountID string, amount float64, now time.Time) (*models.AccountStats, error) {
	key := statsKey(accountID)

	var countCmd *redisv9.IntCmd
	var totalCmd *redisv9.FloatCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redisv9.Pipeliner) error {
		countCmd = pipe.HIncrBy(ctx, key, statsFieldCount, 1)
		totalCmd = pipe.HIncrByFloat(ctx, key, statsFieldTotal, amount)
		pipe.HSet(ctx, key, statsFieldLastUpdated, now.UTC().Format(time.RFC3339Nano))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction for account %s: %w", accountID, err)
	}

	stats := &models.AccountStats{
		AccountID:        accountID,
		TransactionCount: countCmd.Val(),
		TotalAmount:      totalCmd.Val(),
		LastUpdated:      now.UTC(),
	}
	if stats.TransactionCount > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.TransactionCount)
	}
	return stats, nil
}

// GetStats получает статистику по счету; nil без ошибки, если истории нет
func (c *Client) GetStats(ctx context.Context, accountID string) (*models.AccountStats, error) {
	vals, err := c.rdb.HGetAll(ctx, statsKey(accountID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for account %s: %w", accountID, err)
	}
	if len(vals) == 0 {
		return nil, nil
	}

	count, err := strconv.ParseInt(vals[statsFieldCount], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt %s for account %s: %w", statsFieldCount, accountID, err)
	}
	total, err := strconv.ParseFloat(vals[statsFieldTotal], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt %s for account %s: %w", statsFieldTotal, accountID, err)
	}

	stats := &models.AccountStats{
		AccountID:        accountID,
		TransactionCount: count,
		TotalAmount:      total,
	}
	if count > 0 {
		stats.AverageAmount = total / float64(count)
	}
	if raw, ok := vals[statsFieldLastUpdated]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			stats.LastUpdated = ts
		}
	}
	return stats, nil
}
