package led

import (
	"os"
	"strings"
)

const deviceTreeModelPath = "/proc/device-tree/model"

// DetectName returns the sysfs LED name for the current board, or ""
// when the board is unknown and no LED mapping exists.
func DetectName() string {
	return nameForBoard(detectBoard())
}

// nameForBoard maps a device tree model string to the board's user
// visible LED.
func nameForBoard(boardModel string) string {
	switch {
	case strings.Contains(boardModel, "NanoPC-T6"):
		return "usr_led"
	// Orange Pi device trees use both "Orange Pi" and "OrangePi".
	case strings.Contains(boardModel, "Orange Pi"), strings.Contains(boardModel, "OrangePi"):
		return "green_led"
	case strings.Contains(boardModel, "Raspberry Pi"):
		return "ACT"
	default:
		return ""
	}
}

// detectBoard reads the device tree model to identify the board.
func detectBoard() string {
	data, err := os.ReadFile(deviceTreeModelPath)
	if err != nil {
		return "unknown"
	}

	// Device tree model contains null bytes, trim them
	return strings.TrimRight(string(data), "\x00")
}
