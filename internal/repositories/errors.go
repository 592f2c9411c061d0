package repositories

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBalanceNotFound    = errors.New("balance not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrDatabaseOperation  = errors.New("database operation failed")
)
