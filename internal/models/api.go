package models

// LoginRequest представляет запрос на получение токена
type LoginRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse представляет ответ с JWT токеном
type LoginResponse struct {
	Token string `json:"token"`
}

// SubmitTransactionRequest представляет транзакцию, поступившую через gateway.
// transaction_id и received_at назначаются сервисом при постановке в очередь.
type SubmitTransactionRequest struct {
	AccountID       string  `json:"account_id" binding:"required"`
	BankID          string  `json:"bank_id"`
	Amount          float64 `json:"amount" binding:"min=0"`
	TransactionType string  `json:"transaction_type" binding:"required"`
	GeoRegion       string  `json:"geo_region"`
	LoginStatus     string  `json:"login_status"`
}

// SubmitTransactionResponse представляет ответ на постановку транзакции в очередь
type SubmitTransactionResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}
