package blink

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/blinkip/blinkip/internal/roman"
)

// DefaultRepeats is how many times the plan is blinked per session
// before the LED is handed back to its default system behaviour.
const DefaultRepeats = 10

// Device is a binary on/off LED actuation primitive.
type Device interface {
	Set(on bool) error
}

// Timings holds the six durations that make up a blink timeline. The
// off gap between pulses of one digit (PulseGap) is deliberately a
// separate knob from the pause between digits (DigitGap).
type Timings struct {
	ShortOn  time.Duration
	MediumOn time.Duration
	LongOn   time.Duration
	PulseGap time.Duration
	DigitGap time.Duration
	GroupGap time.Duration
}

// DefaultTimings returns the standard blink cadence: pulses short
// enough to count, pauses long enough to separate digits by eye.
func DefaultTimings() Timings {
	return Timings{
		ShortOn:  100 * time.Millisecond,
		MediumOn: 400 * time.Millisecond,
		LongOn:   1200 * time.Millisecond,
		PulseGap: 100 * time.Millisecond,
		DigitGap: time.Second,
		GroupGap: 2 * time.Second,
	}
}

// OnDuration returns the LED-on time for a pulse class.
func (t Timings) OnDuration(p roman.Pulse) time.Duration {
	switch p {
	case roman.Medium:
		return t.MediumOn
	case roman.Long:
		return t.LongOn
	default:
		return t.ShortOn
	}
}

// RunnerOptions configures a Runner. Zero values fall back to defaults.
type RunnerOptions struct {
	Timings Timings
	Repeats int
	// Sleep replaces time.Sleep, letting tests run a virtual clock.
	Sleep func(time.Duration)
	Logger *slog.Logger
}

// Runner executes a Plan against an LED device with blocking waits.
// Execution is strictly sequential; ordering and timing fidelity are
// the entire observable contract, so nothing here is concurrent.
type Runner struct {
	dev     Device
	timings Timings
	repeats int
	sleep   func(time.Duration)
	logger  *slog.Logger
}

// NewRunner creates a runner for the given device.
func NewRunner(dev Device, opts RunnerOptions) *Runner {
	r := &Runner{
		dev:     dev,
		timings: opts.Timings,
		repeats: opts.Repeats,
		sleep:   opts.Sleep,
		logger:  opts.Logger,
	}
	if r.timings == (Timings{}) {
		r.timings = DefaultTimings()
	}
	if r.repeats <= 0 {
		r.repeats = DefaultRepeats
	}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Run blinks the plan the configured number of times and returns. Any
// device error aborts immediately with no further toggles; the caller
// owns LED cleanup.
func (r *Runner) Run(plan Plan) error {
	r.logger.Info("Starting blink session",
		"plan", plan.String(),
		"repeats", r.repeats,
		"pass_duration", plan.Duration(r.timings))

	for rep := 0; rep < r.repeats; rep++ {
		if err := r.runPass(plan); err != nil {
			return fmt.Errorf("blink pass %d: %w", rep+1, err)
		}
	}

	r.logger.Info("Blink session complete", "repeats", r.repeats)
	return nil
}

// runPass blinks the plan once, including the trailing pass pause.
func (r *Runner) runPass(plan Plan) error {
	groups := plan.Groups()
	for gi, group := range groups {
		for di, d := range group {
			if err := r.blinkDigit(d); err != nil {
				return fmt.Errorf("digit %d: %w", d.Value, err)
			}
			if di < len(group)-1 {
				r.sleep(r.timings.DigitGap)
			}
		}
		if gi < len(groups)-1 {
			r.sleep(r.timings.GroupGap)
		}
	}
	r.sleep(r.timings.GroupGap)
	return nil
}

// blinkDigit emits one digit's pulses with the inter-pulse off gap
// after every pulse so individual pulses stay distinguishable.
func (r *Runner) blinkDigit(d Digit) error {
	for _, p := range d.Pulses {
		if err := r.dev.Set(true); err != nil {
			return err
		}
		r.sleep(r.timings.OnDuration(p))
		if err := r.dev.Set(false); err != nil {
			return err
		}
		r.sleep(r.timings.PulseGap)
	}
	return nil
}
