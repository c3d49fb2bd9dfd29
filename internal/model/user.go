package model

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
)

// Holder is what an account needs to know about its owner.
type Holder interface {
	FullName() string
	Identifier() string
	Age() int
	Password() string
}

// User keeps the personal data of an account holder.
// The password is stored as given; hashing is out of scope.
type User struct {
	fullName   string
	identifier string
	age        int
	password   string
}

var _ Holder = (*User)(nil)

func NewUser(fullName, identifier string, age int, password string) (*User, error) {
	u := &User{
		fullName: fullName,
		age:      age,
		password: password,
	}
	if err := u.SetIdentifier(identifier); err != nil {
		return nil, err
	}
	return u, nil
}

// ValidateIdentifier accepts exactly 11 ASCII digits.
func ValidateIdentifier(identifier string) error {
	if len(identifier) != constants.IdentifierLen {
		return fmt.Errorf("%w: got %d characters", ErrInvalidIdentifier, len(identifier))
	}
	for i := 0; i < len(identifier); i++ {
		if identifier[i] < '0' || identifier[i] > '9' {
			return fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidIdentifier, identifier)
		}
	}
	return nil
}

func (u *User) SetIdentifier(identifier string) error {
	if err := ValidateIdentifier(identifier); err != nil {
		return err
	}
	u.identifier = identifier
	return nil
}

func (u *User) FullName() string   { return u.fullName }
func (u *User) Identifier() string { return u.identifier }
func (u *User) Age() int           { return u.age }
func (u *User) Password() string   { return u.password }

// FormattedIdentifier returns the identifier as NNN.NNN.NNN-NN.
func (u *User) FormattedIdentifier() string {
	return FormatIdentifier(u.identifier)
}

// FormatIdentifier formats a validated 11 digit identifier.
func FormatIdentifier(id string) string {
	if len(id) != constants.IdentifierLen {
		return id
	}
	return id[:3] + "." + id[3:6] + "." + id[6:9] + "-" + id[9:]
}

func (u *User) String() string {
	var b strings.Builder
	b.WriteString("Usuario: " + u.fullName + "\n")
	b.WriteString("Cpf: " + u.identifier + ". Formatado: " + u.FormattedIdentifier() + "\n")
	fmt.Fprintf(&b, "Idade: %d\n", u.age)
	return b.String()
}
