package main

import "bank-fraud-pipeline/internal/bootstrap/fraud_detection"

func main() { fraud_detection.StartFraudDetectionService() }
