package models

import (
	"time"
)

// Статусы попытки входа, сопровождающей транзакцию
const (
	LoginStatusSuccess = "success"
	LoginStatusFail    = "fail"
)

// DefaultBankID используется, если источник не указал банк
const DefaultBankID = "default-bank"

// Transaction представляет транзакцию, прошедшую валидацию на границе очереди.
// После создания не изменяется: конвейер только читает её и добавляет вердикт.
type Transaction struct {
	TransactionID   string    `json:"transaction_id"`
	AccountID       string    `json:"account_id"`
	BankID          string    `json:"bank_id"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	GeoRegion       string    `json:"geo_region,omitempty"`
	LoginStatus     string    `json:"login_status,omitempty"`
	ReceivedAt      time.Time `json:"received_at"`
}

// AccountStats представляет скользящие агрегаты по счету.
// AverageAmount всегда производное значение: total / count при count > 0.
type AccountStats struct {
	AccountID        string    `json:"account_id"`
	TransactionCount int64     `json:"transaction_count"`
	TotalAmount      float64   `json:"total_amount"`
	AverageAmount    float64   `json:"average_amount"`
	LastUpdated      time.Time `json:"last_updated"`
}

// ActivityEvent представляет событие входа/транзакции для гео- и login-правил.
// EventTime и ExpiresAt в epoch millis; просроченные события невидимы для запросов.
type ActivityEvent struct {
	AccountID string `json:"account_id"`
	EventTime int64  `json:"event_time"`
	GeoRegion string `json:"geo_region"`
	Status    string `json:"status"`
	ExpiresAt int64  `json:"expires_at"`
}

// FlagReason определяет причину, по которой транзакция помечена подозрительной
type FlagReason string

const (
	ReasonNone                FlagReason = "NONE"
	ReasonLargeWithdrawal     FlagReason = "LARGE_WITHDRAWAL"
	ReasonTooManyFailedLogins FlagReason = "TOO_MANY_FAILED_LOGINS"
	ReasonGeoMismatch         FlagReason = "GEO_MISMATCH"
)

// Verdict представляет результат оценки правил
type Verdict struct {
	Flagged bool       `json:"flagged"`
	Reason  FlagReason `json:"reason"`
}

// NotFlagged возвращает вердикт "не подозрительная"
func NotFlagged() *Verdict {
	return &Verdict{Flagged: false, Reason: ReasonNone}
}

// Flagged возвращает вердикт с указанной причиной
func Flagged(reason FlagReason) *Verdict {
	return &Verdict{Flagged: true, Reason: reason}
}

// FlaggedTransaction представляет сохраненную помеченную транзакцию в БД
type FlaggedTransaction struct {
	ID              int64     `db:"id"`
	BankID          string    `db:"bank_id"`
	TransactionID   string    `db:"transaction_id"`
	AccountID       string    `db:"account_id"`
	Amount          float64   `db:"amount"`
	TransactionType string    `db:"transaction_type"`
	Status          string    `db:"status"`
	Reason          string    `db:"reason"`
	FlaggedAt       time.Time `db:"flagged_at"`
	CreatedAt       time.Time `db:"created_at"`
}

// FlaggedTransactionResponse представляет ответ на запрос помеченной транзакции
type FlaggedTransactionResponse struct {
	BankID          string    `json:"bank_id"`
	TransactionID   string    `json:"transaction_id"`
	AccountID       string    `json:"account_id"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason"`
	FlaggedAt       time.Time `json:"flagged_at"`
}

// AlertMessage представляет человекочитаемое оповещение для топика алертов
type AlertMessage struct {
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
	Timestamp     string `json:"timestamp"`
}

// AnalyticsRecord представляет обогащенную транзакцию для аналитического стока.
// Сериализуется как одна JSON-строка с переводом строки (NDJSON).
type AnalyticsRecord struct {
	Transaction
	Flagged   bool       `json:"flagged"`
	Reason    FlagReason `json:"reason"`
	Timestamp string     `json:"timestamp"`
}
