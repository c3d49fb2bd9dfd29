package model

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ana Souza", "12345678901", 30, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.FullName() != "Ana Souza" {
		t.Fatalf("expected name 'Ana Souza', got %q", u.FullName())
	}
	if u.Identifier() != "12345678901" {
		t.Fatalf("expected identifier '12345678901', got %q", u.Identifier())
	}
	if u.Age() != 30 {
		t.Fatalf("expected age 30, got %d", u.Age())
	}
	if u.Password() != "secret" {
		t.Fatalf("expected password 'secret', got %q", u.Password())
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"eleven digits", "12345678901", true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"eleven chars with letter", "1234567890a", false},
		{"formatted", "123.456.789-01", false},
		{"empty", "", false},
		{"spaces", "123 4567890", false},
		{"unicode digit", "1234567890٣", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if tt.ok && err != nil {
				t.Errorf("ValidateIdentifier(%q) unexpected error: %v", tt.id, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("ValidateIdentifier(%q) error = %v, want ErrInvalidIdentifier", tt.id, err)
			}
		})
	}
}

func TestNewUser_InvalidIdentifier(t *testing.T) {
	for _, id := range []string{"1234567890", "1234567890a"} {
		if _, err := NewUser("Ana", id, 30, "pw"); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("NewUser with %q: error = %v, want ErrInvalidIdentifier", id, err)
		}
	}
}

func TestUser_SetIdentifierKeepsOldValueOnError(t *testing.T) {
	u, err := NewUser("Ana", "12345678901", 30, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := u.SetIdentifier("abc"); !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("error = %v, want ErrInvalidIdentifier", err)
	}
	if u.Identifier() != "12345678901" {
		t.Fatalf("identifier changed to %q", u.Identifier())
	}
	if err := u.SetIdentifier("98765432100"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Identifier() != "98765432100" {
		t.Fatalf("expected new identifier, got %q", u.Identifier())
	}
}

func TestUser_FormattedIdentifier(t *testing.T) {
	u, err := NewUser("Ana", "12345678901", 30, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.FormattedIdentifier(); got != "123.456.789-01" {
		t.Fatalf("FormattedIdentifier() = %q, want 123.456.789-01", got)
	}
}

func TestUser_String(t *testing.T) {
	u, err := NewUser("Ana Souza", "12345678901", 30, "pw")
	if err != nil {
		t.Fatal(err)
	}
	want := "Usuario: Ana Souza\nCpf: 12345678901. Formatado: 123.456.789-01\nIdade: 30\n"
	if got := u.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
