package rest

import (
	"net/http"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/generator"
	"bank-fraud-pipeline/internal/logger"
	"bank-fraud-pipeline/internal/models"
	"bank-fraud-pipeline/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	transactionService services.TransactionService
	generator          *generator.TransactionGenerator
	auth               *config.AuthConfig
}

// Создает новые обработчики REST API
func NewHandlers(transactionService services.TransactionService, auth *config.AuthConfig) *Handlers {
	return &Handlers{
		transactionService: transactionService,
		generator:          generator.NewTransactionGenerator(),
		auth:               auth,
	}
}

// HandleLogin выдает токен доступа по учетным данным счета
// @Summary Получить токен доступа
// @Description Проверяет учетные данные счета и возвращает JWT-токен для отправки транзакций
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Учетные данные"
// @Success 200 {object} models.LoginResponse "Токен доступа"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /login [post]
func (h *Handlers) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AccountID != h.auth.AccountID || req.Password != h.auth.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := GenerateToken(h.auth.JWTSecret, req.AccountID, h.auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// HandleSubmitTransaction принимает транзакцию и ставит её в очередь на анализ
// @Summary Отправить транзакцию на анализ
// @Description Принимает транзакцию, назначает ей transaction_id и отправляет в Kafka для асинхронной оценки fraud-сервисом. Ответ не содержит вердикта: оценка выполняется в фоне.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body models.SubmitTransactionRequest true "Данные транзакции"
// @Success 202 {object} models.SubmitTransactionResponse "Транзакция принята в очередь"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [post]
func (h *Handlers) HandleSubmitTransaction(c *gin.Context) {
	var req models.SubmitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	// Логируем получение транзакции
	logger.LogEvent(logger.EventTransactionReceived, "ingestion-service", "api", map[string]interface{}{
		"account_id": req.AccountID,
		"amount":     req.Amount,
	})

	response, err := h.transactionService.SubmitTransaction(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enqueue transaction"})
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// HandleGenerateScenario генерирует и ставит в очередь пакет тестовых транзакций
// @Summary Сгенерировать тестовый сценарий
// @Description Генерирует пакет транзакций для сценария (clean, large, failed_logins, geo) и отправляет их в очередь
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scenario query string false "Сценарий генерации" default(clean)
// @Success 202 {object} map[string]interface{} "Сгенерированные транзакции приняты в очередь"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions/generate [post]
func (h *Handlers) HandleGenerateScenario(c *gin.Context) {
	scenario := c.DefaultQuery("scenario", "clean")

	batch := h.generator.GenerateScenario(scenario)
	ids := make([]string, 0, len(batch))
	for _, req := range batch {
		response, err := h.transactionService.SubmitTransaction(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enqueue generated transaction"})
			return
		}
		ids = append(ids, response.TransactionID)
	}

	c.JSON(http.StatusAccepted, gin.H{
		"scenario":        scenario,
		"transaction_ids": ids,
	})
}
