// Package blink turns a resolved IPv4 address into a timed LED pulse
// schedule and drives an LED device through it.
package blink

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/blinkip/blinkip/internal/roman"
)

// Digit is one decimal digit of an octet together with its pulse
// encoding, computed once at plan build time.
type Digit struct {
	Value  int
	Pulses []roman.Pulse
}

// Plan is the full ordered pulse/pause timeline for one complete
// display of the relevant octets. Digits are grouped per octet so the
// runner can insert the longer inter-group pause.
type Plan struct {
	groups [][]Digit
}

// BuildPlan builds the display plan for the two low octets of an
// address. The third octet a is suppressed entirely when zero; the
// fourth octet b is always rendered, as a lone zero digit if needed.
func BuildPlan(a, b byte) Plan {
	var groups [][]Digit
	if a != 0 {
		groups = append(groups, encodeOctet(a))
	}
	groups = append(groups, encodeOctet(b))
	return Plan{groups: groups}
}

// NoAddressPlan is the degenerate plan blinked when no usable address
// was assigned at boot: three zero digits, read as "000".
func NoAddressPlan() Plan {
	return Plan{groups: [][]Digit{{encodeDigit(0), encodeDigit(0), encodeDigit(0)}}}
}

// PlanFor dispatches on address presence. Anything that is not a valid
// IPv4 address (including 4-in-6 mapped forms, which are unmapped
// first) degrades to the no-address plan rather than erroring.
func PlanFor(addr netip.Addr) Plan {
	addr = addr.Unmap()
	if !addr.IsValid() || !addr.Is4() {
		return NoAddressPlan()
	}
	octets := addr.As4()
	return BuildPlan(octets[2], octets[3])
}

// Groups returns the digit groups in blink order.
func (p Plan) Groups() [][]Digit {
	return p.groups
}

// PulseCount returns the total number of pulses in one pass of the plan.
func (p Plan) PulseCount() int {
	n := 0
	for _, group := range p.groups {
		for _, d := range group {
			n += len(d.Pulses)
		}
	}
	return n
}

// Duration returns the wall-clock length of one pass of the plan under
// the given timings, including the trailing pass pause.
func (p Plan) Duration(t Timings) time.Duration {
	var total time.Duration
	for gi, group := range p.groups {
		for di, d := range group {
			for _, pulse := range d.Pulses {
				total += t.OnDuration(pulse) + t.PulseGap
			}
			if di < len(group)-1 {
				total += t.DigitGap
			}
		}
		if gi < len(p.groups)-1 {
			total += t.GroupGap
		}
	}
	return total + t.GroupGap
}

// String renders the plan as digit/numeral pairs, groups separated by a
// slash: "1=I 4=IV 9=IX / 1=I 0=X 6=VI".
func (p Plan) String() string {
	parts := make([]string, 0, len(p.groups))
	for _, group := range p.groups {
		digits := make([]string, 0, len(group))
		for _, d := range group {
			digits = append(digits, fmt.Sprintf("%d=%s", d.Value, roman.Symbols(d.Pulses)))
		}
		parts = append(parts, strings.Join(digits, " "))
	}
	return strings.Join(parts, " / ")
}

// encodeOctet splits an octet into its decimal digits in display order
// and encodes each one.
func encodeOctet(octet byte) []Digit {
	v := int(octet)
	switch {
	case v >= 100:
		return []Digit{encodeDigit(v / 100), encodeDigit(v / 10 % 10), encodeDigit(v % 10)}
	case v >= 10:
		return []Digit{encodeDigit(v / 10), encodeDigit(v % 10)}
	default:
		return []Digit{encodeDigit(v)}
	}
}

// encodeDigit encodes a single digit. Octet decomposition can only
// produce digits 0-9, so an encoder error here is a broken invariant.
func encodeDigit(d int) Digit {
	pulses, err := roman.Encode(d)
	if err != nil {
		panic(fmt.Sprintf("blink: unreachable digit %d: %v", d, err))
	}
	return Digit{Value: d, Pulses: pulses}
}
