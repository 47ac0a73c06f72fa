// Package systemd manages the blinkip boot unit via the system D-Bus.
package systemd

import (
	"context"

	"github.com/coreos/go-systemd/v22/dbus"
)

// Manager handles systemd unit lifecycle operations via D-Bus.
type Manager struct {
	conn *dbus.Conn
}

// NewManager creates a new systemd manager with a system-level D-Bus
// connection; enabling boot units requires system scope.
func NewManager(ctx context.Context) (*Manager, error) {
	conn, err := dbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, err
	}
	return &Manager{conn: conn}, nil
}

// EnableUnit enables a unit file for the next boot.
func (m *Manager) EnableUnit(ctx context.Context, unitPath string) error {
	_, _, err := m.conn.EnableUnitFilesContext(ctx, []string{unitPath}, false, true)
	return err
}

// Reload asks systemd to rescan its unit files.
func (m *Manager) Reload(ctx context.Context) error {
	return m.conn.ReloadContext(ctx)
}

// StartUnit starts a unit using the replace mode.
func (m *Manager) StartUnit(ctx context.Context, unitName string) error {
	_, err := m.conn.StartUnitContext(ctx, unitName, "replace", nil)
	return err
}

// Close cleanly closes the D-Bus connection.
func (m *Manager) Close() {
	if m.conn != nil {
		m.conn.Close()
	}
}
