package plan

import "errors"

// Service errors
var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanInactive     = errors.New("plan is not active")
	ErrAmountOutOfRange = errors.New("amount outside plan range")
	ErrInvalidAmount    = errors.New("invalid amount")
)
