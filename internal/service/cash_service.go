package service

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
)

// CashService wraps the Money operations exposed by the CLI.
type CashService struct {
	config Config
}

func NewCashService(cfg Config) *CashService {
	return &CashService{config: cfg}
}

func (cs *CashService) Format(amount any) (string, error) {
	m, err := model.NewMoney(amount)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// Options lists withdrawal options; limit <= 0 uses the configured maximum.
func (cs *CashService) Options(amount any, limit int) ([]string, error) {
	if limit <= 0 {
		limit = cs.config.MaxOptions
	}
	m, err := model.NewMoney(amount)
	if err != nil {
		return nil, err
	}
	return m.OptionsLimit(limit)
}

// Breakdown decomposes amount starting at note; note 0 means the largest one.
func (cs *CashService) Breakdown(amount any, note int64) (model.Breakdown, error) {
	if note == 0 {
		note = constants.Banknotes[len(constants.Banknotes)-1]
	}
	m, err := model.NewMoney(amount)
	if err != nil {
		return nil, err
	}
	return m.DecomposeFrom(note)
}

func (cs *CashService) Calculate(a any, op string, b any) (model.Money, error) {
	left, err := model.NewMoney(a)
	if err != nil {
		return model.Money{}, err
	}

	switch strings.ToLower(op) {
	case constants.OpAdd, "+":
		return left.Add(b)
	case constants.OpSub, "-":
		return left.Sub(b)
	case constants.OpMul, "*", "x":
		return left.Mul(b)
	default:
		return model.Money{}, fmt.Errorf("%w: unknown operation %q (use add, sub or mul)", model.ErrInvalidInput, op)
	}
}
