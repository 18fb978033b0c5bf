package core

import "errors"

// Error taxonomy shared by every mutating operation. Callers classify with
// errors.Is; the web layer maps these onto HTTP statuses.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state transition")
	ErrPersistence  = errors.New("persistence failure")
)
