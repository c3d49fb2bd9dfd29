package model

import "errors"

var (
	ErrInvalidIdentifier = errors.New("identifier must have 11 digits, numbers only")
	ErrInvalidUser       = errors.New("account holder is not a valid user")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnsupportedAmount = errors.New("banknotes are only available for whole amounts of at least 1")
	ErrNotDispensable    = errors.New("amount can't be paid with the available banknotes")
	ErrInvalidInput      = errors.New("invalid input")
)
