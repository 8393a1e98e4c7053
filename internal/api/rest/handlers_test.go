package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-fraud-pipeline/internal/config"
	"bank-fraud-pipeline/internal/models"
	servicemocks "bank-fraud-pipeline/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		AccountID: "12345",
		Password:  "password123",
	}
}

func setupTestRouter(handlers *Handlers, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.POST("/login", handlers.HandleLogin)

		authorized := api.Group("")
		authorized.Use(AuthMiddleware(secret))
		{
			authorized.POST("/transactions", handlers.HandleSubmitTransaction)
			authorized.POST("/transactions/generate", handlers.HandleGenerateScenario)
		}
	}

	return router
}

func authHeader(t *testing.T, auth *config.AuthConfig) string {
	token, err := GenerateToken(auth.JWTSecret, auth.AccountID, auth.TokenTTL)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandlers_HandleLogin_Success(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	body, _ := json.Marshal(models.LoginRequest{AccountID: "12345", Password: "password123"})
	req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestHandlers_HandleLogin_InvalidCredentials(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	body, _ := json.Marshal(models.LoginRequest{AccountID: "12345", Password: "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlers_HandleLogin_MissingFields(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewBufferString(`{"account_id": "12345"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_HandleSubmitTransaction_Success(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	response := &models.SubmitTransactionResponse{
		Status:        "queued",
		TransactionID: "d2b3f0a1-0000-0000-0000-000000000000",
	}
	mockService.On("SubmitTransaction", mock.AnythingOfType("*models.SubmitTransactionRequest")).Return(response, nil)

	reqBody := models.SubmitTransactionRequest{
		AccountID:       "ACC123456",
		Amount:          250.5,
		TransactionType: "purchase",
		GeoRegion:       "US",
		LoginStatus:     "success",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, auth))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var result models.SubmitTransactionResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "queued", result.Status)
	assert.NotEmpty(t, result.TransactionID)

	mockService.AssertExpectations(t)
}

func TestHandlers_HandleSubmitTransaction_NoToken(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	reqBody := models.SubmitTransactionRequest{
		AccountID:       "ACC123456",
		Amount:          100,
		TransactionType: "purchase",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "SubmitTransaction")
}

func TestHandlers_HandleSubmitTransaction_BadToken(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	// Токен, подписанный другим секретом, отклоняется
	token, err := GenerateToken("other-secret", "12345", time.Hour)
	require.NoError(t, err)

	reqBody := models.SubmitTransactionRequest{
		AccountID:       "ACC123456",
		Amount:          100,
		TransactionType: "purchase",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "SubmitTransaction")
}

func TestHandlers_HandleSubmitTransaction_InvalidJSON(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, auth))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SubmitTransaction")
}

func TestHandlers_HandleSubmitTransaction_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	mockService.On("SubmitTransaction", mock.AnythingOfType("*models.SubmitTransactionRequest")).
		Return(nil, errors.New("broker unavailable"))

	reqBody := models.SubmitTransactionRequest{
		AccountID:       "ACC123456",
		Amount:          100,
		TransactionType: "purchase",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/transactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, auth))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandlers_HandleGenerateScenario(t *testing.T) {
	mockService := new(servicemocks.MockTransactionService)
	auth := testAuthConfig()
	handlers := NewHandlers(mockService, auth)
	router := setupTestRouter(handlers, auth.JWTSecret)

	response := &models.SubmitTransactionResponse{Status: "queued", TransactionID: "generated"}
	mockService.On("SubmitTransaction", mock.AnythingOfType("*models.SubmitTransactionRequest")).Return(response, nil)

	req := httptest.NewRequest("POST", "/api/v1/transactions/generate?scenario=failed_logins", nil)
	req.Header.Set("Authorization", authHeader(t, auth))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "failed_logins", result["scenario"])

	ids, ok := result["transaction_ids"].([]interface{})
	require.True(t, ok)
	// Сценарий неудачных входов: три входа и контрольная транзакция
	assert.Len(t, ids, 4)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", "ACC123456", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
