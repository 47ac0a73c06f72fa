package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blinkip/blinkip/internal/logging"
	"github.com/blinkip/blinkip/internal/systemd"
	"github.com/spf13/cobra"
)

const unitName = "blinkip.service"

// CreateInstallCmd creates the install command, which writes the
// oneshot boot unit and enables it over D-Bus.
func CreateInstallCmd() *cobra.Command {
	var unitDir string
	var enable bool
	var now bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the blinkip systemd boot unit",
		Long: `Writes a oneshot systemd unit that runs blinkip after the network comes up ` +
			`and enables it for the next boot. Requires root.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logging.Initialize(logging.Config{Level: "info", Format: "text"})
			logger := logging.GetLogger("systemd")

			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to resolve own path: %w", err)
			}

			unitPath, err := writeUnit(unitDir, execPath)
			if err != nil {
				return err
			}
			logger.Info("Wrote unit file", "path", unitPath)

			if !enable {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			mgr, err := systemd.NewManager(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to systemd: %w", err)
			}
			defer mgr.Close()

			if err := mgr.Reload(ctx); err != nil {
				return fmt.Errorf("failed to reload systemd: %w", err)
			}
			if err := mgr.EnableUnit(ctx, unitPath); err != nil {
				return fmt.Errorf("failed to enable unit: %w", err)
			}
			logger.Info("Enabled unit for next boot", "unit", unitName)

			if now {
				if err := mgr.StartUnit(ctx, unitName); err != nil {
					return fmt.Errorf("failed to start unit: %w", err)
				}
				logger.Info("Started unit", "unit", unitName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unitDir, "unit-dir", "/etc/systemd/system", "Directory to write the unit file to")
	cmd.Flags().BoolVar(&enable, "enable", true, "Enable the unit for the next boot")
	cmd.Flags().BoolVar(&now, "now", false, "Also start the unit immediately")
	return cmd
}

// writeUnit writes the blinkip unit file and returns its path.
func writeUnit(dir, execPath string) (string, error) {
	path := filepath.Join(dir, unitName)
	if err := os.WriteFile(path, []byte(unitContent(execPath)), 0644); err != nil {
		return "", fmt.Errorf("failed to write unit file: %w", err)
	}
	return path, nil
}

// unitContent renders the oneshot unit. The unit waits for the network
// so there is an address to blink, and does not linger after the
// session completes.
func unitContent(execPath string) string {
	return fmt.Sprintf(`[Unit]
Description=Blink IP address on board LED
After=network-online.target
Wants=network-online.target

[Service]
Type=oneshot
ExecStart=%s
RemainAfterExit=no

[Install]
WantedBy=multi-user.target
`, execPath)
}
