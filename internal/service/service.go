package service

import (
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/model"
)

type Config struct {
	Agency             string
	MaxOptions         int
	FirstAccountNumber int64
	Currency           string
}

// ConfigFrom picks the settings the services need out of the app config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Agency:             cfg.Bank.Agency,
		MaxOptions:         cfg.Bank.MaxOptions,
		FirstAccountNumber: cfg.Bank.FirstAccountNumber,
		Currency:           cfg.Defaults.Currency,
	}
}

type Service struct {
	Account *AccountService
	Cash    *CashService
	Config  Config
}

// NewService wires the services around one account number sequence. A nil
// seq starts a fresh counter at cfg.FirstAccountNumber.
func NewService(seq model.Sequence, cfg Config) *Service {
	if seq == nil {
		seq = model.NewCounter(cfg.FirstAccountNumber)
	}
	return &Service{
		Account: NewAccountService(seq, cfg),
		Cash:    NewCashService(cfg),
		Config:  cfg,
	}
}
