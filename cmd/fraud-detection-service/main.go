package main

import "card-fraud-system/internal/bootstrap/fraud_detection"

func main() {
	fraud_detection.StartFraudDetectionService()
}
