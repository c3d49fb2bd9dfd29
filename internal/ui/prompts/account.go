package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
)

// PromptAgency prompts for the agency number, defaulting to the configured one
func PromptAgency(defaultAgency string) (string, error) {
	return PromptInput(fmt.Sprintf("Agency (default: %s):", defaultAgency), defaultAgency, adapt(validation.ValidateAgency))
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance() (string, error) {
	return PromptInput("Initial Balance (press Enter for 0):", "0", adapt(validation.ValidateInitialBalance))
}

// PromptDeposit prompts for a deposit amount
func PromptDeposit() (string, error) {
	return PromptAmount("Deposit amount:", "e.g. 150 or 99.90", adapt(validation.ValidatePositiveAmount))
}

// PromptWithdrawal prompts for a whole amount the banknotes can pay
func PromptWithdrawal() (string, error) {
	return PromptAmount("Withdrawal amount:", "Whole amounts only. Notes: 2, 5, 10, 20, 50, 100", adapt(validation.ValidateWithdrawal))
}

// PromptAccount lets the user pick one of the open accounts
func PromptAccount(accounts []*model.Account) (*model.Account, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts open yet")
	}

	accountMap := make(map[string]*model.Account)
	var options []huh.Option[string]

	for _, acc := range accounts {
		label := fmt.Sprintf("%s - %s", acc.Number(), acc.Holder.FullName())
		accountMap[acc.Number()] = acc
		options = append(options, huh.NewOption(label, acc.Number()))
	}

	var selected string

	err := huh.NewSelect[string]().
		Title("Account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()

	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	return accountMap[selected], nil
}
