package led

import "log/slog"

// Noop implements the device surface without touching hardware, for
// dry runs and systems without a usable LED.
type Noop struct {
	logger *slog.Logger
}

// NewNoop creates a no-op LED device.
func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger}
}

// Set logs the request but performs no actual LED control.
func (n *Noop) Set(on bool) error {
	n.logger.Debug("LED state change (no-op)", "on", on)
	return nil
}

// Close is a no-op.
func (n *Noop) Close() error {
	return nil
}
