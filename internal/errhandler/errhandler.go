package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the user cancelling a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Hint returns a short suggestion for known domain errors.
func Hint(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidIdentifier):
		return "Type the 11 digits of the CPF without dots or dashes."
	case errors.Is(err, model.ErrInvalidAmount):
		return "Use a plain decimal number such as 1500 or 99.90."
	case errors.Is(err, model.ErrUnsupportedAmount):
		return "Withdrawals must be whole amounts of at least 1."
	case errors.Is(err, model.ErrNotDispensable):
		return "Banknotes available: 2, 5, 10, 20, 50 and 100."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Check the balance with 'teller session' before withdrawing."
	case errors.Is(err, service.ErrAccountNotFound):
		return "List the open accounts to find the right number."
	default:
		return ""
	}
}

// HandleError prints err for the user. Cancelled prompts exit cleanly.
func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	if hint := Hint(err); hint != "" {
		pterm.Info.Println(hint)
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
