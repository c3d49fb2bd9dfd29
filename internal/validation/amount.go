package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/model"
)

// ValidateInitialBalance validates initial balance input
func ValidateInitialBalance(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("balance must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" || input == "0" {
		return nil
	}

	m, err := model.NewMoney(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if m.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ValidatePositiveAmount is used for deposits
func ValidatePositiveAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	m, err := model.NewMoney(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if m.IsNegative() || m.IsZero() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateWithdrawal requires a whole amount the banknotes can pay
func ValidateWithdrawal(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	m, err := model.NewMoney(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	opts, err := m.Options()
	if err != nil {
		return err
	}
	if len(opts) == 0 {
		return fmt.Errorf("%s can't be paid with the available banknotes", m)
	}
	return nil
}
