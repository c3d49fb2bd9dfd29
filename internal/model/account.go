package model

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
)

// Account ties a holder to a balance. Balance writes are not synchronized;
// callers serialize concurrent updates of the same account.
type Account struct {
	ID            int64
	AccountNumber string
	AgencyNumber  string
	Holder        Holder
	balance       Money
}

// NewAccount opens an account with a zero balance.
func NewAccount(seq Sequence, holder Holder, agency string) (*Account, error) {
	return NewAccountWithBalance(seq, holder, agency, Zero())
}

// NewAccountWithBalance opens an account numbered by seq. The balance may be
// Money or any raw number NewMoney accepts.
func NewAccountWithBalance(seq Sequence, holder Holder, agency string, balance any) (*Account, error) {
	if holder == nil {
		return nil, ErrInvalidUser
	}
	if u, ok := holder.(*User); ok && u == nil {
		return nil, ErrInvalidUser
	}
	if seq == nil {
		return nil, fmt.Errorf("%w: missing account number sequence", ErrInvalidInput)
	}

	initial, err := NewMoney(balance)
	if err != nil {
		return nil, fmt.Errorf("initial balance: %w", err)
	}

	acc := &Account{
		AgencyNumber: agency,
		Holder:       holder,
		balance:      initial,
	}
	if err := acc.SetNumber(seq.Next()); err != nil {
		return nil, err
	}
	return acc, nil
}

// Number returns the zero padded account number.
func (a *Account) Number() string {
	return a.AccountNumber
}

// SetNumber stores n and its 6 character zero padded form.
func (a *Account) SetNumber(n int64) error {
	padded, err := FormatAccountNumber(n)
	if err != nil {
		return err
	}
	a.ID = n
	a.AccountNumber = padded
	return nil
}

// FormatAccountNumber left pads n with zeros to 6 characters.
func FormatAccountNumber(n int64) (string, error) {
	if n < 0 || n > constants.MaxAccountNumber {
		return "", fmt.Errorf("%w: account number %d doesn't fit %d digits", ErrInvalidInput, n, constants.AccountNumberWidth)
	}
	return fmt.Sprintf("%0*d", constants.AccountNumberWidth, n), nil
}

func (a *Account) Balance() Money {
	return a.balance
}

// SetBalance replaces the balance. Raw numbers are converted to Money.
func (a *Account) SetBalance(v any) error {
	m, err := NewMoney(v)
	if err != nil {
		return err
	}
	a.balance = m
	return nil
}

func (a *Account) String() string {
	var b strings.Builder
	b.WriteString("Agencia: " + a.AgencyNumber + "\n")
	b.WriteString("Conta: " + a.AccountNumber + "\n")
	b.WriteString("Saldo: " + a.balance.String() + "\n")
	return b.String()
}
