package model

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/shopspring/decimal"
)

// Money is an immutable monetary value kept at two decimal places.
// Every constructor and arithmetic result is rounded away from zero.
type Money struct {
	value decimal.Decimal
}

// NewMoney converts v into Money. Accepted inputs are integers, floats,
// decimal strings, decimal.Decimal and Money itself.
func NewMoney(v any) (Money, error) {
	d, err := toDecimal(v)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d.RoundUp(constants.MoneyPlaces)}, nil
}

// MustMoney is like NewMoney but panics on invalid input.
func MustMoney(v any) Money {
	m, err := NewMoney(v)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns 0.00.
func Zero() Money {
	return Money{value: decimal.Zero}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case Money:
		return x.value, nil
	case *Money:
		if x == nil {
			return decimal.Zero, fmt.Errorf("%w: nil money", ErrInvalidAmount)
		}
		return x.value, nil
	case decimal.Decimal:
		return x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case uint:
		return decimal.NewFromUint64(uint64(x)), nil
	case uint32:
		return decimal.NewFromUint64(uint64(x)), nil
	case uint64:
		return decimal.NewFromUint64(x), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, x)
		}
		return exactFloat(float64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, x)
		}
		return exactFloat(x), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, x)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

// exactFloat expands x to its exact binary value, so 0.1 becomes
// 0.1000000000000000055511151231257827... and not the shortest form.
// x must be finite.
func exactFloat(x float64) decimal.Decimal {
	r := new(big.Rat).SetFloat64(x)
	// The denominator of a finite float is 2^k, and n/2^k == n*5^k/10^k.
	k := r.Denom().BitLen() - 1
	scale := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)
	return decimal.NewFromBigInt(new(big.Int).Mul(r.Num(), scale), int32(-k))
}

// Value returns the underlying decimal.
func (m Money) Value() decimal.Decimal {
	return m.value
}

// String renders the value as [-]1,234.50.
func (m Money) String() string {
	sign := ""
	if m.value.IsNegative() {
		sign = "-"
	}

	abs := m.value.Abs()
	// Truncate(0) of a non-negative decimal always yields plain digits.
	whole, _ := Commas(abs.Truncate(0).String())
	fixed := abs.StringFixed(constants.MoneyPlaces)
	fract := fixed[len(fixed)-constants.MoneyPlaces:]

	return fmt.Sprintf("%s%s.%s", sign, whole, fract)
}

func (m Money) Add(other any) (Money, error) {
	d, err := toDecimal(other)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(m.value.Add(d))
}

func (m Money) Sub(other any) (Money, error) {
	d, err := toDecimal(other)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(m.value.Sub(d))
}

func (m Money) Mul(other any) (Money, error) {
	d, err := toDecimal(other)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(m.value.Mul(d))
}

// Sum adds a and b where either side may be a raw number or Money.
func Sum(a, b any) (Money, error) {
	left, err := NewMoney(a)
	if err != nil {
		return Money{}, err
	}
	return left.Add(b)
}

func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Commas inserts a comma every three digits, counting from the right.
// Ex: "1234567" -> "1,234,567"
func Commas(digits string) (string, error) {
	if digits == "" {
		return "", fmt.Errorf("%w: empty digit string", ErrInvalidInput)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: %q is not a digit string", ErrInvalidInput, digits)
		}
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String(), nil
}
