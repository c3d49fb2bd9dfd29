package service

import (
	"errors"
	"testing"

	"github.com/hance08/teller/internal/model"
)

func TestCashService_Format(t *testing.T) {
	cs := NewCashService(testConfig)

	got, err := cs.Format("-1234.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "-1,234.50" {
		t.Fatalf("expected -1,234.50, got %s", got)
	}

	if _, err := cs.Format("1,000"); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCashService_Options(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		limit int
		want  int
	}{
		{"config limit", Config{MaxOptions: 2}, 0, 2},
		{"explicit limit", Config{MaxOptions: 2}, 5, 5},
		{"negative uses config", Config{MaxOptions: 3}, -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCashService(tt.cfg).Options("1000", tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d options, got %d: %q", tt.want, len(got), got)
			}
		})
	}
}

func TestCashService_Breakdown(t *testing.T) {
	cs := NewCashService(testConfig)

	b, err := cs.Breakdown("186", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[0].Note != 100 {
		t.Fatalf("expected to start with 100 notes, got %d", b[0].Note)
	}
	if !b.Total().Equal(model.MustMoney(186).Value()) {
		t.Fatalf("breakdown totals %s", b.Total())
	}

	b, err = cs.Breakdown(60, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 1 || b[0].Note != 20 || b[0].Count.IntPart() != 3 {
		t.Fatalf("unexpected breakdown %+v", b)
	}

	if _, err := cs.Breakdown(60, 30); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := cs.Breakdown("0.5", 0); !errors.Is(err, model.ErrUnsupportedAmount) {
		t.Fatalf("expected ErrUnsupportedAmount, got %v", err)
	}
}

func TestCashService_Calculate(t *testing.T) {
	cs := NewCashService(testConfig)
	tests := []struct {
		a, op, b string
		want     string
	}{
		{"2", "add", "3", "5.00"},
		{"2", "+", "3", "5.00"},
		{"10", "sub", "12.5", "-2.50"},
		{"10.10", "mul", "3", "30.30"},
		{"1.01", "*", "0.5", "0.51"},
		{"1000", "ADD", "234.5", "1,234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.a+tt.op+tt.b, func(t *testing.T) {
			got, err := cs.Calculate(tt.a, tt.op, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := cs.Calculate("1", "div", "2"); !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := cs.Calculate("1", "add", "two"); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
