package main

import "bank-fraud-pipeline/internal/bootstrap/ingestion"

// @title Bank Fraud Pipeline API
// @version 1.0
// @description Асинхронный конвейер обнаружения мошеннических транзакций
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() { ingestion.StartIngestionService() }
