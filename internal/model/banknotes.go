package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/shopspring/decimal"
)

// NoteCount is how many notes of one denomination a withdrawal uses.
type NoteCount struct {
	Note  int64
	Count decimal.Decimal
}

// Breakdown lists note counts from the largest denomination down.
type Breakdown []NoteCount

// Total re-multiplies the counts by their denominations.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, nc := range b {
		total = total.Add(nc.Count.Mul(decimal.NewFromInt(nc.Note)))
	}
	return total
}

// Line renders the breakdown as option number n, e.g.
// "1. 10 cedulas de 100 / ".
func (b Breakdown) Line(n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d. ", n)
	for _, nc := range b {
		unit := " cedulas de "
		if nc.Count.Equal(decimal.NewFromInt(1)) {
			unit = " cedula de "
		}
		sb.WriteString(nc.Count.String() + unit + fmt.Sprint(nc.Note) + " / ")
	}
	return sb.String()
}

// NotePosition returns the index of note in constants.Banknotes.
func NotePosition(note int64) (int, error) {
	for i, n := range constants.Banknotes {
		if n == note {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no banknote of %d", ErrInvalidInput, note)
}

func (m Money) checkDispensable() error {
	if m.value.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s is below 1", ErrUnsupportedAmount, m)
	}
	if !m.value.IsInteger() {
		return fmt.Errorf("%w: %s is not a whole amount", ErrUnsupportedAmount, m)
	}
	return nil
}

// Decompose splits the value into banknotes, starting at constants.Banknotes[pos]
// and moving to smaller notes. Each note is used as many times as possible while
// the rest can still be paid with the smaller ones.
func (m Money) Decompose(pos int) (Breakdown, error) {
	if err := m.checkDispensable(); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= len(constants.Banknotes) {
		return nil, fmt.Errorf("%w: banknote position %d out of range", ErrInvalidInput, pos)
	}

	b, ok := dispense(m.value, pos)
	if !ok {
		return nil, fmt.Errorf("%w: %s starting at %d", ErrNotDispensable, m, constants.Banknotes[pos])
	}
	return b, nil
}

// DecomposeFrom is Decompose addressed by denomination instead of position.
func (m Money) DecomposeFrom(note int64) (Breakdown, error) {
	pos, err := NotePosition(note)
	if err != nil {
		return nil, err
	}
	return m.Decompose(pos)
}

func dispense(remaining decimal.Decimal, pos int) (Breakdown, bool) {
	if remaining.IsZero() {
		return Breakdown{}, true
	}
	if pos < 0 {
		return nil, false
	}

	note := decimal.NewFromInt(constants.Banknotes[pos])
	count, _ := remaining.QuoRem(note, 0)

	// Trying as many counts as the smallest note covers every residue the
	// smaller notes could still need.
	limit := constants.Banknotes[0]
	for tries := int64(0); tries < limit && !count.IsNegative(); tries++ {
		rest, ok := dispense(remaining.Sub(count.Mul(note)), pos-1)
		if ok {
			if count.IsZero() {
				return rest, true
			}
			return append(Breakdown{{Note: constants.Banknotes[pos], Count: count}}, rest...), true
		}
		count = count.Sub(decimal.NewFromInt(1))
	}
	return nil, false
}

// Options returns up to constants.DefaultMaxOptions withdrawal options.
func (m Money) Options() ([]string, error) {
	return m.OptionsLimit(constants.DefaultMaxOptions)
}

// OptionsLimit proposes one breakdown per banknote not larger than the value,
// largest first, stopping after limit options. Starting notes that leave an
// amount no smaller note can pay, or that only work with none of themselves,
// are skipped.
func (m Money) OptionsLimit(limit int) ([]string, error) {
	result := []string{}
	for i := len(constants.Banknotes) - 1; i >= 0 && len(result) < limit; i-- {
		if decimal.NewFromInt(constants.Banknotes[i]).GreaterThan(m.value) {
			continue
		}

		b, err := m.Decompose(i)
		if errors.Is(err, ErrNotDispensable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		// Without its own note the option repeats a later one
		if len(b) == 0 || b[0].Note != constants.Banknotes[i] {
			continue
		}
		result = append(result, b.Line(len(result)+1))
	}
	return result, nil
}
