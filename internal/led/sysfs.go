// Package led acquires a board LED through the Linux sysfs interface
// and provides exclusive on/off control for the blink session.
package led

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSysfsRoot is the standard sysfs LED class directory.
const DefaultSysfsRoot = "/sys/class/leds"

// ErrDeviceUnavailable reports that the LED could not be acquired,
// either because the sysfs node is missing or not writable.
var ErrDeviceUnavailable = errors.New("led device unavailable")

// Sysfs drives a single sysfs LED. Open saves the active kernel
// trigger and disables it; Close restores it, so the LED returns to
// its default system behaviour after the session.
type Sysfs struct {
	path         string
	savedTrigger string
}

// Open acquires the named LED under root. It stores the currently
// active trigger and takes manual control by writing "none". A missing
// or unwritable LED returns an error wrapping ErrDeviceUnavailable and
// leaves no partial state behind.
func Open(root, name string) (*Sysfs, error) {
	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: LED %q not found at %s", ErrDeviceUnavailable, name, path)
	}

	triggerPath := filepath.Join(path, "trigger")
	data, err := os.ReadFile(triggerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read LED trigger: %v", ErrDeviceUnavailable, err)
	}
	saved := activeTrigger(string(data))

	if err := os.WriteFile(triggerPath, []byte("none"), 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to take manual LED control: %v", ErrDeviceUnavailable, err)
	}

	return &Sysfs{path: path, savedTrigger: saved}, nil
}

// Set turns the LED on or off.
func (s *Sysfs) Set(on bool) error {
	value := "0"
	if on {
		value = "1"
	}
	brightnessPath := filepath.Join(s.path, "brightness")
	if err := os.WriteFile(brightnessPath, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to set LED brightness: %w", err)
	}
	return nil
}

// Close turns the LED off and restores the trigger saved at Open,
// handing the LED back to the platform's default indicator behaviour.
func (s *Sysfs) Close() error {
	offErr := s.Set(false)

	triggerPath := filepath.Join(s.path, "trigger")
	if err := os.WriteFile(triggerPath, []byte(s.savedTrigger), 0644); err != nil {
		return fmt.Errorf("failed to restore LED trigger: %w", err)
	}
	return offErr
}

// SavedTrigger returns the trigger that was active when the LED was
// acquired.
func (s *Sysfs) SavedTrigger() string {
	return s.savedTrigger
}

// activeTrigger extracts the active trigger from a sysfs trigger file,
// which lists all triggers with the active one in brackets, e.g.
// "none timer [heartbeat] default-on".
func activeTrigger(contents string) string {
	for _, field := range strings.Fields(contents) {
		if strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]") {
			return strings.Trim(field, "[]")
		}
	}
	// Single-value trigger files have no brackets.
	if fields := strings.Fields(contents); len(fields) == 1 {
		return fields[0]
	}
	return "none"
}
