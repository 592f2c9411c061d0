package errors

var ErrInsufficientBalance = &DomainError{
	Code:    "INSUFFICIENT_BALANCE",
	Message: "insufficient available balance",
}
