package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"bank-fraud-pipeline/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

const activityKeyPrefix = "activity:account:"

func activityKey(accountID string) string {
	return activityKeyPrefix + accountID
}

// RecordEvent добавляет событие активности со сроком жизни в одно окно.
// Score сортированного множества равен event_time в millis; вместе с записью
// вычищаются события старше окна, а ключ получает TTL, чтобы счет без
// активности не оставлял мусора.
func (c *Client) RecordEvent(ctx context.Context, event *models.ActivityEvent) error {
	if event.ExpiresAt == 0 {
		event.ExpiresAt = event.EventTime + c.retention.Milliseconds()
	}

	member, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	key := activityKey(event.AccountID)
	cutoff := event.EventTime - c.retention.Milliseconds()

	pipe := c.rdb.Pipeline()
	pipe.ZAdd(ctx, key, redisv9.Z{Score: float64(event.EventTime), Member: member})
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	pipe.Expire(ctx, key, c.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record activity event for account %s: %w", event.AccountID, err)
	}
	return nil
}

// QueryRecent возвращает события счета в диапазоне [from, to], новые первыми.
// Просроченные события никогда не возвращаются: нижняя граница запроса
// поднимается до начала окна хранения, остальное отфильтровывается по expires_at.
func (c *Client) QueryRecent(ctx context.Context, accountID string, from, to time.Time) ([]models.ActivityEvent, error) {
	nowMs := time.Now().UnixMilli()
	minScore := from.UnixMilli()
	if floor := nowMs - c.retention.Milliseconds(); floor > minScore {
		minScore = floor
	}

	raw, err := c.rdb.ZRevRangeByScore(ctx, activityKey(accountID), &redisv9.ZRangeBy{
		Min: strconv.FormatInt(minScore, 10),
		Max: strconv.FormatInt(to.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity for account %s: %w", accountID, err)
	}

	events := make([]models.ActivityEvent, 0, len(raw))
	for _, item := range raw {
		var event models.ActivityEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			log.Printf("Skipping unreadable activity entry for account %s: %v", accountID, err)
			continue
		}
		if event.ExpiresAt > 0 && event.ExpiresAt <= nowMs {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
