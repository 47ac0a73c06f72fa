package netinfo

import (
	"testing"
)

const routeTable = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
wlan0	00000000	0102A8C0	0003	0	0	600	00000000	0	0	0
wlan0	0002A8C0	00000000	0001	0	0	600	00FFFFFF	0	0	0
`

const routeTableNoDefault = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	0002A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
`

func TestDefaultInterface(t *testing.T) {
	tests := []struct {
		name   string
		table  string
		want   string
		wantOK bool
	}{
		{"wlan default route", routeTable, "wlan0", true},
		{"no default route", routeTableNoDefault, "", false},
		{"empty table", "", "", false},
		{"header only", "Iface	Destination\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := defaultInterface(tt.table)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("defaultInterface() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"192.168.1.5", "192.168.1.5", true},
		{" 10.0.0.1\n", "10.0.0.1", true},
		{"::ffff:192.168.0.105", "192.168.0.105", true},
		{"fe80::1", "", false},
		{"not-an-address", "", false},
		{"192.168.1.5/24", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		addr, ok := Parse(tt.input)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			continue
		}
		if ok && addr.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, addr, tt.want)
		}
	}
}
