package fraud_detection

import (
	"log"
	"net/http"
	"strconv"

	"bank-fraud-pipeline/internal/api/rest"
	"bank-fraud-pipeline/internal/logger"
	"bank-fraud-pipeline/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes настраивает маршруты для fraud detection service
func SetupRoutes(router *gin.Engine, storageRepo storage.FlaggedTransactionRepository, redisClient interface{ ClearPipelineData() error }) {
	api := router.Group("/api/v1")
	{
		api.GET("/transactions/:transaction_id", func(c *gin.Context) {
			transactionID := c.Param("transaction_id")
			flagged, err := storageRepo.GetFlaggedTransaction(c.Request.Context(), transactionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flagged transaction"})
				return
			}
			if flagged == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Flagged transaction not found"})
				return
			}
			c.JSON(http.StatusOK, flagged)
		})

		api.GET("/transactions", func(c *gin.Context) {
			limit := 100
			if limitStr := c.Query("limit"); limitStr != "" {
				if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
					limit = parsed
				}
			}

			flagged, err := storageRepo.GetRecentFlagged(c.Request.Context(), limit)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get flagged transactions"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"transactions": flagged})
		})

		api.DELETE("/transactions", func(c *gin.Context) {
			if err := storageRepo.ClearFlaggedTransactions(c.Request.Context()); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear flagged transactions"})
				return
			}

			if err := redisClient.ClearPipelineData(); err != nil {
				log.Printf("Warning: Failed to clear Redis data: %v", err)
			}

			logger.LogEvent(logger.EventFlaggedSaved, "fraud-detection-service", "sqlite", map[string]interface{}{
				"action": "database_cleared",
			})

			c.JSON(http.StatusOK, gin.H{
				"message":       "All flagged transactions and cache cleared successfully",
				"clear_storage": true,
			})
		})
	}

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}
