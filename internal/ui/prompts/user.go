package prompts

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/validation"
)

// UserInput holds the raw answers of the user form.
type UserInput struct {
	FullName   string
	Identifier string
	Age        int
	Password   string
}

// PromptUser asks for every user field. Fields already set in known are
// not asked again; a negative Age counts as unset.
func PromptUser(known UserInput, askPassword bool) (UserInput, error) {
	in := known
	var err error

	if in.FullName == "" {
		in.FullName, err = PromptInput("Full name:", "", adapt(validation.ValidateFullName))
		if err != nil {
			return in, fmt.Errorf("input cancelled: %w", err)
		}
	}

	if in.Identifier == "" {
		in.Identifier, err = PromptInput("CPF (11 digits):", "", adapt(validation.ValidateIdentifier))
		if err != nil {
			return in, fmt.Errorf("input cancelled: %w", err)
		}
	}

	if in.Age < 0 {
		ageStr, err := PromptInput("Age:", "", adapt(validation.ValidateAge))
		if err != nil {
			return in, fmt.Errorf("input cancelled: %w", err)
		}
		in.Age, _ = strconv.Atoi(ageStr)
	}

	if askPassword && in.Password == "" {
		in.Password, err = PromptPassword()
		if err != nil {
			return in, err
		}
	}

	return in, nil
}

// PromptPassword reads a password without echoing it
func PromptPassword() (string, error) {
	var pw string
	prompt := &survey.Password{Message: "Password:"}

	err := survey.AskOne(prompt, &pw,
		survey.WithValidator(validation.ValidatePassword),
		ui.IconOption(),
	)
	return pw, err
}
