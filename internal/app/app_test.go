package app

import (
	"testing"

	"github.com/hance08/teller/internal/config"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "disabled"
	cfg.Bank.FirstAccountNumber = 7

	a, cleanup, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	defer cleanup()

	if a.Config != cfg {
		t.Error("NewApp() did not keep the config")
	}
	if a.Service.Config.Agency != cfg.Bank.Agency {
		t.Errorf("agency = %q, want %q", a.Service.Config.Agency, cfg.Bank.Agency)
	}
}

func TestNewAppInvalidLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "loud"

	if _, _, err := NewApp(cfg); err == nil {
		t.Error("NewApp() expected error for unknown log level")
	}
}

func TestNewAppSeparateBanks(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "disabled"

	a1, _, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a2, _, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a1.Service == a2.Service {
		t.Error("apps share one service")
	}
}
