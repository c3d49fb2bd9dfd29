package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
)

// Validators take `any` so they can be handed to survey as well as huh.

// ValidateFullName checks the holder's display name
func ValidateFullName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("name must be a string")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateIdentifier checks a CPF typed by the user
func ValidateIdentifier(val any) error {
	id, ok := val.(string)
	if !ok {
		return fmt.Errorf("identifier must be a string")
	}
	return model.ValidateIdentifier(strings.TrimSpace(id))
}

// ValidateAge accepts a whole, non-negative age given as text or int
func ValidateAge(val any) error {
	var age int
	switch v := val.(type) {
	case int:
		age = v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("age must be a whole number")
		}
		age = n
	default:
		return fmt.Errorf("age must be a number")
	}

	if age < 0 || age > constants.MaxAge {
		return fmt.Errorf("age must be between 0 and %d", constants.MaxAge)
	}
	return nil
}

// ValidatePassword only requires something to be typed
func ValidatePassword(val any) error {
	pw, ok := val.(string)
	if !ok {
		return fmt.Errorf("password must be a string")
	}
	if pw == "" {
		return fmt.Errorf("password can't be empty")
	}
	return nil
}

// ValidateUser runs the field validators over values given as flags
func ValidateUser(fullName, identifier string, age int) error {
	if err := ValidateFullName(fullName); err != nil {
		return err
	}
	if err := ValidateIdentifier(identifier); err != nil {
		return err
	}
	return ValidateAge(age)
}
