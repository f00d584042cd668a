//go:build !tinygo || nodebug

// Stub used for host builds and when built with the nodebug tag. Excludes
// the SSD1306 driver and font data.
package display

import (
	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

// Manager is a no-op stub.
type Manager struct{}

// NewManager returns nil; all Manager methods accept a nil receiver.
func NewManager() *Manager {
	return nil
}

// ShowLinkState is a no-op in nodebug mode.
func (m *Manager) ShowLinkState(s scheduler.LinkState) {}

// ShowReport is a no-op in nodebug mode.
func (m *Manager) ShowReport(r report.Report) {}

// ShowError is a no-op in nodebug mode.
func (m *Manager) ShowError(msg string) {}
