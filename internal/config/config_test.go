package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func isolateAppDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolateAppDir(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bank.Agency != "0001" {
		t.Fatalf("expected agency 0001, got %q", cfg.Bank.Agency)
	}
	if cfg.Bank.MaxOptions != 3 {
		t.Fatalf("expected max options 3, got %d", cfg.Bank.MaxOptions)
	}
	if cfg.Defaults.Currency != "BRL" {
		t.Fatalf("expected currency BRL, got %q", cfg.Defaults.Currency)
	}
	if cfg.ConfigPath != "" {
		t.Fatalf("expected no config file, got %q", cfg.ConfigPath)
	}
}

func TestLoad_File(t *testing.T) {
	isolateAppDir(t)
	path := writeConfig(t, `
bank:
  agency: "1234"
  max_options: 5
  first_account_number: 100
defaults:
  currency: USD
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bank.Agency != "1234" {
		t.Fatalf("expected agency 1234, got %q", cfg.Bank.Agency)
	}
	if cfg.Bank.MaxOptions != 5 {
		t.Fatalf("expected max options 5, got %d", cfg.Bank.MaxOptions)
	}
	if cfg.Bank.FirstAccountNumber != 100 {
		t.Fatalf("expected first account number 100, got %d", cfg.Bank.FirstAccountNumber)
	}
	if cfg.Defaults.Currency != "USD" {
		t.Fatalf("expected currency USD, got %q", cfg.Defaults.Currency)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.ConfigPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateAppDir(t)
	path := writeConfig(t, "bank:\n  agency: \"1234\"\n")
	t.Setenv("TELLER_BANK_AGENCY", "9999")
	t.Setenv("TELLER_BANK_MAX_OPTIONS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bank.Agency != "9999" {
		t.Fatalf("expected agency from env, got %q", cfg.Bank.Agency)
	}
	if cfg.Bank.MaxOptions != 2 {
		t.Fatalf("expected max options from env, got %d", cfg.Bank.MaxOptions)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolateAppDir(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	isolateAppDir(t)
	tests := []struct {
		name string
		body string
	}{
		{"zero options", "bank:\n  max_options: 0\n"},
		{"negative start", "bank:\n  first_account_number: -1\n"},
		{"start too large", "bank:\n  first_account_number: 1000000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	isolateAppDir(t)

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg.Bank.MaxOptions != 3 {
		t.Fatalf("expected default max options, got %d", cfg.Bank.MaxOptions)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := LoadDotEnv(); err != nil {
			t.Fatalf("expected no error without .env, got %v", err)
		}
	})

	t.Run("file feeds Load", func(t *testing.T) {
		isolateAppDir(t)
		dir := t.TempDir()
		chdir(t, dir)
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TELLER_DEFAULTS_CURRENCY=USD\n"), 0644); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Unsetenv("TELLER_DEFAULTS_CURRENCY") })

		if err := LoadDotEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Defaults.Currency != "USD" {
			t.Fatalf("expected currency from .env, got %q", cfg.Defaults.Currency)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		if err := os.Mkdir(filepath.Join(dir, ".env"), 0755); err != nil {
			t.Fatal(err)
		}

		if err := LoadDotEnv(); err == nil {
			t.Fatal("expected error when .env can't be read")
		}
	})
}
