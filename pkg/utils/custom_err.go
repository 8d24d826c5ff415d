package utils

import "errors"

var (
	ErrInvalidBudget      = errors.New("budget must be a positive number")
	ErrInvalidDates       = errors.New("invalid date range")
	ErrNoDestinations     = errors.New("at least one destination is required")
	ErrPromptUnparseable  = errors.New("could not parse destination or budget from input")
	ErrTripNotFound       = errors.New("trip not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
