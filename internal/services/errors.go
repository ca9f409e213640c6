package services

import (
	"errors"

	"card-fraud-system/internal/fraud"
)

var (
	ErrCardNotFound = fraud.ErrCardNotFound

	ErrLimitExceeded      = errors.New("operation refused: limit exceeded")
	ErrCardNotActive      = errors.New("operation refused: card is not active")
	ErrAlreadyActive      = errors.New("card is already active")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerExists     = errors.New("customer with this email already exists")
	ErrOperationNotFound  = errors.New("operation not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidLimit       = errors.New("card limit is missing or negative")
	ErrInvalidOperation   = errors.New("invalid operation type")
	ErrInvalidLocation    = errors.New("location is required")
	ErrInvalidCustomer    = errors.New("customer name and email are required")
	ErrInvalidAlertLevel  = errors.New("invalid alert level")
	ErrInvalidReportRange = errors.New("invalid report period")
	ErrUnknownCardType    = errors.New("unknown card type")

	// ErrDetectionNotQueued - операция записана, но событие для детекции не опубликовано
	ErrDetectionNotQueued = errors.New("operation recorded but not queued for detection")
)
