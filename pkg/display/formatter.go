package display

import (
	"fmt"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

// FormatLinkState returns a short status line for the display.
func FormatLinkState(s scheduler.LinkState) string {
	return "USB: " + s.String()
}

// FormatReport renders a report as two compact rows suitable for a
// 16-character display line: the button mask with the hat value, and the
// live axes.
func FormatReport(r report.Report) (buttons, axes string) {
	buttons = fmt.Sprintf("B:%08X H:%d", r.Buttons, r.Hat)
	axes = fmt.Sprintf("X:%02X Y:%02X", r.X, r.Y)
	return buttons, axes
}
