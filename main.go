package main

import (
	"log/slog"
	"net/netip"
	"os"
	"time"

	"github.com/blinkip/blinkip/cmd"
	"github.com/blinkip/blinkip/internal/blink"
	"github.com/blinkip/blinkip/internal/config"
	"github.com/blinkip/blinkip/internal/led"
	"github.com/blinkip/blinkip/internal/logging"
	"github.com/blinkip/blinkip/internal/netinfo"
	"github.com/spf13/cobra"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string

	// Runtime-only settings
	IP     string
	DryRun bool

	// LED settings
	LED       string `toml:"led.name" env:"LED_NAME"`
	SysfsRoot string `toml:"led.sysfs_root" env:"LED_SYSFS_ROOT"`

	// Blink settings
	Repeats  int    `toml:"blink.repeats" env:"BLINK_REPEATS"`
	ShortOn  string `toml:"blink.short_on" env:"BLINK_SHORT_ON"`
	MediumOn string `toml:"blink.medium_on" env:"BLINK_MEDIUM_ON"`
	LongOn   string `toml:"blink.long_on" env:"BLINK_LONG_ON"`
	PulseGap string `toml:"blink.pulse_gap" env:"BLINK_PULSE_GAP"`
	DigitGap string `toml:"blink.digit_gap" env:"BLINK_DIGIT_GAP"`
	GroupGap string `toml:"blink.group_gap" env:"BLINK_GROUP_GAP"`

	// Logging settings
	LoggingLevel   string `toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingBlink   string `toml:"logging.blink" env:"LOGGING_BLINK"`
	LoggingLED     string `toml:"logging.led" env:"LOGGING_LED"`
	LoggingNetinfo string `toml:"logging.netinfo" env:"LOGGING_NETINFO"`
}

func main() {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "blinkip",
		Short: "Blink the device IP address on the board LED",
		Long: `blinkip runs once at boot on a headless board and blinks the two low ` +
			`octets of the device's IPv4 address on the board LED using Roman-numeral ` +
			`pulses, so the address can be read without a display or serial console.`,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return run(c, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Config, "config", "c", "/etc/blinkip.toml", "Path to configuration file")
	flags.StringVar(&opts.IP, "ip", "", "IPv4 address to blink (skips auto-detection)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Log the blink timeline without driving hardware")
	flags.StringVar(&opts.LED, "led", "", "sysfs LED name (default: detect from board model)")
	flags.StringVar(&opts.SysfsRoot, "sysfs-root", led.DefaultSysfsRoot, "sysfs LED class directory")
	flags.IntVar(&opts.Repeats, "repeats", blink.DefaultRepeats, "Number of times to blink the full plan")
	flags.StringVar(&opts.ShortOn, "short-on", "100ms", "On-time of a short (I) pulse")
	flags.StringVar(&opts.MediumOn, "medium-on", "400ms", "On-time of a medium (V) pulse")
	flags.StringVar(&opts.LongOn, "long-on", "1.2s", "On-time of a long (X) pulse")
	flags.StringVar(&opts.PulseGap, "pulse-gap", "100ms", "Off-time between pulses of one digit")
	flags.StringVar(&opts.DigitGap, "digit-gap", "1s", "Pause between digits of one octet")
	flags.StringVar(&opts.GroupGap, "group-gap", "2s", "Pause between octets and after a full pass")
	flags.StringVar(&opts.LoggingLevel, "logging-level", "info", "Global logging level (debug, info, warn, error)")
	flags.StringVar(&opts.LoggingFormat, "logging-format", "text", "Logging format (text, json)")
	flags.StringVar(&opts.LoggingBlink, "logging-blink", "info", "Blink scheduler logging level")
	flags.StringVar(&opts.LoggingLED, "logging-led", "info", "LED device logging level")
	flags.StringVar(&opts.LoggingNetinfo, "logging-netinfo", "info", "Address resolution logging level")

	rootCmd.AddCommand(cmd.CreatePlanCmd())
	rootCmd.AddCommand(cmd.CreateInstallCmd())
	rootCmd.AddCommand(cmd.CreateVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes one blink session. Blink problems are logged and
// swallowed: the blink is a best-effort visual aid and must never fail
// or delay the rest of boot.
func run(c *cobra.Command, opts *Options) error {
	if loadErr := config.Load(opts, c); loadErr != nil {
		slog.Warn("Failed to load config", "error", loadErr)
	}

	logging.Initialize(logging.Config{
		Level:  opts.LoggingLevel,
		Format: opts.LoggingFormat,
		Modules: map[string]string{
			"blink":   opts.LoggingBlink,
			"led":     opts.LoggingLED,
			"netinfo": opts.LoggingNetinfo,
		},
	})
	logger := logging.GetLogger("main")

	timings := parseTimings(opts, logger)

	var addr netip.Addr
	if opts.IP != "" {
		parsed, ok := netinfo.Parse(opts.IP)
		if !ok {
			logger.Warn("Supplied address not usable, blinking 000", "ip", opts.IP)
		}
		addr = parsed
	} else {
		addr, _ = netinfo.Resolve(logging.GetLogger("netinfo"))
	}
	plan := blink.PlanFor(addr)

	var dev blink.Device
	if opts.DryRun {
		dev = led.NewNoop(logging.GetLogger("led"))
	} else {
		name := opts.LED
		if name == "" {
			name = led.DetectName()
		}
		if name == "" {
			logger.Warn("No LED mapping for this board, skipping blink")
			return nil
		}

		sysfsDev, err := led.Open(opts.SysfsRoot, name)
		if err != nil {
			logger.Warn("LED unavailable, skipping blink", "error", err)
			return nil
		}
		defer func() {
			if closeErr := sysfsDev.Close(); closeErr != nil {
				logger.Warn("Failed to release LED", "error", closeErr)
			}
		}()
		dev = sysfsDev
	}

	runner := blink.NewRunner(dev, blink.RunnerOptions{
		Timings: timings,
		Repeats: opts.Repeats,
		Logger:  logging.GetLogger("blink"),
	})
	if err := runner.Run(plan); err != nil {
		logger.Error("Blink session aborted", "error", err)
	}
	return nil
}

// parseTimings converts the string duration options, falling back to
// the default for any value that does not parse.
func parseTimings(opts *Options, logger *slog.Logger) blink.Timings {
	timings := blink.DefaultTimings()

	parse := func(name, value string, dst *time.Duration) {
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			logger.Warn("Invalid duration, using default", "setting", name, "value", value, "default", *dst)
			return
		}
		*dst = d
	}

	parse("short_on", opts.ShortOn, &timings.ShortOn)
	parse("medium_on", opts.MediumOn, &timings.MediumOn)
	parse("long_on", opts.LongOn, &timings.LongOn)
	parse("pulse_gap", opts.PulseGap, &timings.PulseGap)
	parse("digit_gap", opts.DigitGap, &timings.DigitGap)
	parse("group_gap", opts.GroupGap, &timings.GroupGap)
	return timings
}
