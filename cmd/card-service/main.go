package main

import (
	"card-fraud-system/internal/bootstrap/card_service"
)

// @title Card Fraud System API
// @version 1.0
// @description API выпуска карт, журнала операций и детекции мошенничества
// @host localhost:8080
// @BasePath /api/v1
func main() {
	card_service.StartCardService()
}
