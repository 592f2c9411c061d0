// Package errors defines domain error values shared across services.
// Handlers branch on these instead of matching on message text.
package errors

import "fmt"

// DomainError is an API-visible error with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
