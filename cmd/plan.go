// Package cmd holds the blinkip subcommands.
package cmd

import (
	"fmt"
	"time"

	"github.com/blinkip/blinkip/internal/blink"
	"github.com/blinkip/blinkip/internal/netinfo"
	"github.com/spf13/cobra"
)

// CreatePlanCmd creates the plan command, which prints the pulse
// timeline for an address without touching hardware.
func CreatePlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [address]",
		Short: "Print the blink plan for an address",
		Long: `Shows the pulse sequence that would be blinked for the given IPv4 address ` +
			`without driving the LED. With no address, the no-address plan ("000") is shown.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			plan := blink.NoAddressPlan()
			shown := "none"
			if len(args) == 1 {
				if addr, ok := netinfo.Parse(args[0]); ok {
					plan = blink.PlanFor(addr)
					shown = addr.String()
				} else {
					shown = fmt.Sprintf("%s (unusable, treated as none)", args[0])
				}
			}

			timings := blink.DefaultTimings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "address: %s\n", shown)
			fmt.Fprintf(out, "plan:    %s\n", plan)
			fmt.Fprintf(out, "pulses:  %d per pass\n", plan.PulseCount())
			fmt.Fprintf(out, "pass:    %s\n", plan.Duration(timings))
			fmt.Fprintf(out, "session: %s (%d passes)\n",
				time.Duration(blink.DefaultRepeats)*plan.Duration(timings), blink.DefaultRepeats)
		},
	}
}
