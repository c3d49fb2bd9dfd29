package validation

import (
	"fmt"
	"strings"
)

// ValidateAgency checks the agency number, digits only
func ValidateAgency(val any) error {
	agency, ok := val.(string)
	if !ok {
		return fmt.Errorf("agency must be a string")
	}

	agency = strings.TrimSpace(agency)
	if agency == "" {
		return nil // Empty is allowed (will use default)
	}
	for _, c := range agency {
		if c < '0' || c > '9' {
			return fmt.Errorf("agency must contain only digits")
		}
	}
	return nil
}
