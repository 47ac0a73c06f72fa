package blink

import (
	"net/netip"
	"testing"
	"time"

	"github.com/blinkip/blinkip/internal/roman"
)

func digitValues(groups [][]Digit) [][]int {
	out := make([][]int, 0, len(groups))
	for _, group := range groups {
		vals := make([]int, 0, len(group))
		for _, d := range group {
			vals = append(vals, d.Value)
		}
		out = append(out, vals)
	}
	return out
}

func equalGroups(got, want [][]int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			return false
		}
		for j := range got[i] {
			if got[i][j] != want[i][j] {
				return false
			}
		}
	}
	return true
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want [][]int
	}{
		{"both octets", 149, 106, [][]int{{1, 4, 9}, {1, 0, 6}}},
		{"third octet zero suppressed", 0, 105, [][]int{{1, 0, 5}}},
		{"fourth octet zero still rendered", 168, 0, [][]int{{1, 6, 8}, {0}}},
		{"both zero", 0, 0, [][]int{{0}}},
		{"single digit octets", 1, 7, [][]int{{1}, {7}}},
		{"two digit octets", 42, 99, [][]int{{4, 2}, {9, 9}}},
		{"max octets", 255, 255, [][]int{{2, 5, 5}, {2, 5, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(tt.a, tt.b)
			got := digitValues(plan.Groups())
			if !equalGroups(got, tt.want) {
				t.Errorf("BuildPlan(%d, %d) digits = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNoAddressPlan(t *testing.T) {
	plan := NoAddressPlan()

	got := digitValues(plan.Groups())
	if !equalGroups(got, [][]int{{0, 0, 0}}) {
		t.Errorf("NoAddressPlan() digits = %v, want [[0 0 0]]", got)
	}

	// "000" must read as three long pulses
	if plan.PulseCount() != 3 {
		t.Errorf("NoAddressPlan() pulse count = %d, want 3", plan.PulseCount())
	}
	for _, group := range plan.Groups() {
		for _, d := range group {
			if len(d.Pulses) != 1 || d.Pulses[0] != roman.Long {
				t.Errorf("digit %d pulses = %v, want [Long]", d.Value, d.Pulses)
			}
		}
	}
}

func TestPlanFor(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want [][]int
	}{
		{"suppressed third octet", "192.168.0.105", [][]int{{1, 0, 5}}},
		{"full address", "192.168.149.106", [][]int{{1, 4, 9}, {1, 0, 6}}},
		{"mapped ipv4", "::ffff:10.0.3.27", [][]int{{3}, {2, 7}}},
		{"ipv6 degrades to no address", "fe80::1", [][]int{{0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanFor(netip.MustParseAddr(tt.addr))
			got := digitValues(plan.Groups())
			if !equalGroups(got, tt.want) {
				t.Errorf("PlanFor(%s) digits = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestPlanForInvalidAddr(t *testing.T) {
	plan := PlanFor(netip.Addr{})
	got := digitValues(plan.Groups())
	if !equalGroups(got, [][]int{{0, 0, 0}}) {
		t.Errorf("PlanFor(zero addr) digits = %v, want [[0 0 0]]", got)
	}
}

func TestPlanPulses(t *testing.T) {
	// 192.168.0.105: third octet suppressed, 105 -> I, X, V
	plan := PlanFor(netip.MustParseAddr("192.168.0.105"))
	groups := plan.Groups()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	want := [][]roman.Pulse{{roman.Short}, {roman.Long}, {roman.Medium}}
	for i, d := range groups[0] {
		if roman.Symbols(d.Pulses) != roman.Symbols(want[i]) {
			t.Errorf("digit %d pulses = %v, want %v", d.Value, d.Pulses, want[i])
		}
	}
}

func TestPlanString(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"192.168.149.106", "1=I 4=IV 9=IX / 1=I 0=X 6=VI"},
		{"192.168.0.105", "1=I 0=X 5=V"},
	}

	for _, tt := range tests {
		plan := PlanFor(netip.MustParseAddr(tt.addr))
		if got := plan.String(); got != tt.want {
			t.Errorf("PlanFor(%s).String() = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestPlanDuration(t *testing.T) {
	timings := Timings{
		ShortOn:  1 * time.Millisecond,
		MediumOn: 4 * time.Millisecond,
		LongOn:   12 * time.Millisecond,
		PulseGap: 1 * time.Millisecond,
		DigitGap: 10 * time.Millisecond,
		GroupGap: 20 * time.Millisecond,
	}

	// 0.105 -> digits 1, 0, 5:
	// I:  1+1 = 2
	// X: 12+1 = 13
	// V:  4+1 = 5
	// two digit gaps (20) + trailing group gap (20) = 60
	plan := BuildPlan(0, 105)
	if got := plan.Duration(timings); got != 60*time.Millisecond {
		t.Errorf("Duration = %v, want 60ms", got)
	}
}
