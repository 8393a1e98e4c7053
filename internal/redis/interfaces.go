package redis

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"
)

// StatsStore определяет операции над скользящими агрегатами счета.
// Вся мутация проходит через атомарный RecordTransaction: вызывающий код
// никогда не делает read-modify-write поверх двух отдельных вызовов.
type StatsStore interface {
	// RecordTransaction атомарно обновляет агрегаты и возвращает снимок после обновления
	RecordTransaction(ctx context.Context, accountID string, amount float64, now time.Time) (*models.AccountStats, error)

	// GetStats получает статистику по счету; nil, если истории нет
	GetStats(ctx context.Context, accountID string) (*models.AccountStats, error)
}

// ActivityStore определяет операции над событиями недавней активности
type ActivityStore interface {
	// RecordEvent добавляет событие со сроком жизни в одно окно хранения
	RecordEvent(ctx context.Context, event *models.ActivityEvent) error

	// QueryRecent возвращает события в диапазоне времени, новые первыми
	QueryRecent(ctx context.Context, accountID string, from, to time.Time) ([]models.ActivityEvent, error)
}

// ClientInterface объединяет оба хранилища и служебные операции.
// Реализуется типом Client; моки живут в пакете mocks.
type ClientInterface interface {
	StatsStore
	ActivityStore

	// ClearPipelineData очищает агрегаты и события активности
	ClearPipelineData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
