// Package netinfo resolves the IPv4 address the blink session should
// display: the first usable address on the default-route interface.
package netinfo

import (
	"log/slog"
	"net"
	"net/netip"
	"os"
	"strings"
)

const procNetRoute = "/proc/net/route"

// Resolve finds the IPv4 address of the default-route interface.
// Every failure mode (no default route, interface gone, no IPv4)
// reports ok=false; the blink is informational, so resolution never
// hard-fails.
func Resolve(logger *slog.Logger) (netip.Addr, bool) {
	data, err := os.ReadFile(procNetRoute)
	if err != nil {
		logger.Warn("Failed to read routing table", "error", err)
		return netip.Addr{}, false
	}

	iface, ok := defaultInterface(string(data))
	if !ok {
		logger.Info("No default route, no address to blink")
		return netip.Addr{}, false
	}

	addr, ok := interfaceIPv4(iface)
	if !ok {
		logger.Info("No IPv4 address on default interface", "interface", iface)
		return netip.Addr{}, false
	}

	logger.Info("Resolved address", "interface", iface, "address", addr)
	return addr, true
}

// Parse validates an explicitly supplied address string. Anything that
// is not IPv4 (mapped forms are unmapped first) reports ok=false and is
// treated the same as no address.
func Parse(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// defaultInterface parses /proc/net/route contents and returns the
// interface that carries the all-zero destination route.
func defaultInterface(table string) (string, bool) {
	lines := strings.Split(table, "\n")
	if len(lines) < 2 {
		return "", false
	}

	// Skip the header line. Fields: Iface Destination Gateway Flags ...
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[1] == "00000000" {
			return fields[0], true
		}
	}
	return "", false
}

// interfaceIPv4 returns the first non-loopback IPv4 address assigned
// to the named interface.
func interfaceIPv4(name string) (netip.Addr, bool) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return netip.Addr{}, false
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return netip.Addr{}, false
	}

	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip4 := ipNet.IP.To4()
		if ip4 == nil || ip4.IsLoopback() {
			continue
		}
		addr, ok := netip.AddrFromSlice(ip4)
		if !ok {
			continue
		}
		return addr, true
	}
	return netip.Addr{}, false
}
