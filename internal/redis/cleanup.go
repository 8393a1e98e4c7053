package redis

import (
	"context"
	"fmt"
)

// ClearPipelineData очищает агрегаты счетов и события активности из Redis
func (c *Client) ClearPipelineData() error {
	ctx := context.Background()

	patterns := []string{
		statsKeyPrefix + "*",
		activityKeyPrefix + "*",
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			c.rdb.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to clear pattern %s: %w", pattern, err)
		}
	}

	return nil
}
