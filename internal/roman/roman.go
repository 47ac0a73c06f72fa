// Package roman encodes single decimal digits as LED pulse sequences
// using a Roman-numeral scheme restricted to the range 0-9.
package roman

import (
	"errors"
	"fmt"
)

// Pulse is one timed LED-on interval class.
type Pulse int

const (
	// Short is the "I" pulse, value 1.
	Short Pulse = iota
	// Medium is the "V" pulse, value 5.
	Medium
	// Long is the "X" pulse, value 10. It also stands in for zero so
	// that every digit produces at least one visible pulse.
	Long
)

// ErrInvalidDigit is returned when Encode receives a value outside 0-9.
var ErrInvalidDigit = errors.New("digit out of range")

// String returns the pulse class name.
func (p Pulse) String() string {
	switch p {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("pulse(%d)", int(p))
	}
}

// Symbol returns the Roman numeral character for the pulse.
func (p Pulse) Symbol() string {
	switch p {
	case Short:
		return "I"
	case Medium:
		return "V"
	case Long:
		return "X"
	default:
		return "?"
	}
}

// Encode maps a single decimal digit to its ordered pulse sequence.
// Subtractive forms are used for 4 (IV) and 9 (IX); zero encodes as a
// lone long pulse rather than nothing. The function is pure and has no
// side effects.
func Encode(digit int) ([]Pulse, error) {
	switch digit {
	case 0:
		return []Pulse{Long}, nil
	case 4:
		return []Pulse{Short, Medium}, nil
	case 9:
		return []Pulse{Short, Long}, nil
	}

	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigit, digit)
	}

	var seq []Pulse
	if digit >= 5 {
		seq = append(seq, Medium)
		digit -= 5
	}
	for i := 0; i < digit; i++ {
		seq = append(seq, Short)
	}
	return seq, nil
}

// Symbols renders a pulse sequence as a Roman numeral string, e.g. the
// encoding of 7 renders as "VII".
func Symbols(pulses []Pulse) string {
	s := ""
	for _, p := range pulses {
		s += p.Symbol()
	}
	return s
}
