package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/model"
)

// AccountService keeps the accounts opened during this process.
// All methods are safe for concurrent use.
type AccountService struct {
	mu       sync.Mutex
	seq      model.Sequence
	config   Config
	accounts map[string]*model.Account
}

func NewAccountService(seq model.Sequence, cfg Config) *AccountService {
	return &AccountService{
		seq:      seq,
		config:   cfg,
		accounts: make(map[string]*model.Account),
	}
}

// Withdrawal is the outcome of a successful withdrawal.
type Withdrawal struct {
	Account *model.Account
	Amount  model.Money
	Balance model.Money
	Options []string
}

// OpenAccount creates and registers an account. An empty agency falls back to
// the configured one; balance may be nil for a zero opening balance.
func (as *AccountService) OpenAccount(holder model.Holder, agency string, balance any) (*model.Account, error) {
	if strings.TrimSpace(agency) == "" {
		agency = as.config.Agency
	}
	if balance == nil {
		balance = model.Zero()
	}

	initial, err := model.NewMoney(balance)
	if err != nil {
		return nil, err
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance can't be negative", model.ErrInvalidAmount)
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	acc, err := model.NewAccountWithBalance(as.seq, holder, agency, initial)
	if err != nil {
		return nil, err
	}
	if _, exists := as.accounts[acc.Number()]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAccountExists, acc.Number())
	}
	as.accounts[acc.Number()] = acc

	logger.Info("account opened", map[string]any{
		"number":  acc.Number(),
		"agency":  acc.AgencyNumber,
		"balance": acc.Balance().String(),
	})
	return acc, nil
}

// GetAccount accepts the number with or without zero padding.
func (as *AccountService) GetAccount(number string) (*model.Account, error) {
	key, err := normalizeNumber(number)
	if err != nil {
		return nil, err
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	acc, ok := as.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, number)
	}
	return acc, nil
}

// GetAllAccounts returns the accounts ordered by number.
func (as *AccountService) GetAllAccounts() []*model.Account {
	as.mu.Lock()
	defer as.mu.Unlock()

	out := make([]*model.Account, 0, len(as.accounts))
	for _, acc := range as.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (as *AccountService) Deposit(number string, amount any) (model.Money, error) {
	m, err := model.NewMoney(amount)
	if err != nil {
		return model.Money{}, err
	}
	if m.IsNegative() || m.IsZero() {
		return model.Money{}, fmt.Errorf("%w: deposit must be greater than zero", model.ErrInvalidAmount)
	}

	acc, err := as.GetAccount(number)
	if err != nil {
		return model.Money{}, err
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	balance, err := acc.Balance().Add(m)
	if err != nil {
		return model.Money{}, err
	}
	if err := acc.SetBalance(balance); err != nil {
		return model.Money{}, err
	}

	logger.Info("deposit", map[string]any{"number": acc.Number(), "amount": m.String()})
	return balance, nil
}

// Withdraw takes a whole amount out of the account and returns the banknote
// options for paying it.
func (as *AccountService) Withdraw(number string, amount any) (*Withdrawal, error) {
	m, err := model.NewMoney(amount)
	if err != nil {
		return nil, err
	}

	options, err := m.OptionsLimit(as.config.MaxOptions)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrNotDispensable, m)
	}

	acc, err := as.GetAccount(number)
	if err != nil {
		return nil, err
	}

	as.mu.Lock()
	defer as.mu.Unlock()

	if acc.Balance().Cmp(m) < 0 {
		logger.Warn("withdrawal refused", map[string]any{
			"number":  acc.Number(),
			"amount":  m.String(),
			"balance": acc.Balance().String(),
		})
		return nil, fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, acc.Balance(), m)
	}

	balance, err := acc.Balance().Sub(m)
	if err != nil {
		return nil, err
	}
	if err := acc.SetBalance(balance); err != nil {
		return nil, err
	}

	logger.Info("withdrawal", map[string]any{"number": acc.Number(), "amount": m.String()})
	return &Withdrawal{
		Account: acc,
		Amount:  m,
		Balance: balance,
		Options: options,
	}, nil
}

func normalizeNumber(number string) (string, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(number), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: account number %q", model.ErrInvalidInput, number)
	}
	return model.FormatAccountNumber(n)
}
