//go:build tinygo && !nodebug

// Package display provides SSD1306 OLED display support for debug output.
// It shows the USB link state and the last built gamepad report.
//
// To build without display support (saves RAM and flash), use:
//
//	tinygo build -tags=nodebug -target=pico -o firmware.uf2 .
package display

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

const (
	// I2C configuration
	i2cAddress = 0x3C
	sclPin     = machine.GPIO1
	sdaPin     = machine.GPIO0

	// Display dimensions
	screenWidth  = 128
	screenHeight = 64
)

var white = color.RGBA{255, 255, 255, 255}

var font = &proggy.TinySZ8pt7b

// Manager handles the SSD1306 display for debug output. A nil Manager is
// valid and inert, so callers never have to branch on display presence.
type Manager struct {
	device *ssd1306.Device
	link   scheduler.LinkState
	rep    report.Report
	errMsg string
}

// NewManager creates and initializes the display manager.
// Returns nil if display initialization fails (non-fatal for debug).
func NewManager() *Manager {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400000,
		SCL:       sclPin,
		SDA:       sdaPin,
	}); err != nil {
		return nil
	}

	// Small delay for bus stabilization
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: i2cAddress,
		Width:   screenWidth,
		Height:  screenHeight,
	})
	dev.ClearDisplay()

	m := &Manager{device: &dev}
	m.redraw()
	return m
}

// ShowLinkState updates the link state row. Redraws only on change.
func (m *Manager) ShowLinkState(s scheduler.LinkState) {
	if m == nil || s == m.link {
		return
	}
	m.link = s
	m.redraw()
}

// ShowReport updates the report rows. Redraws only on change.
func (m *Manager) ShowReport(r report.Report) {
	if m == nil || r == m.rep {
		return
	}
	m.rep = r
	m.redraw()
}

// ShowError displays an error message on the bottom row.
func (m *Manager) ShowError(msg string) {
	if m == nil || msg == m.errMsg {
		return
	}
	m.errMsg = msg
	m.redraw()
}

func (m *Manager) redraw() {
	m.device.ClearBuffer()
	tinyfont.WriteLine(m.device, font, 0, 10, "joypad", white)
	tinyfont.WriteLine(m.device, font, 0, 24, FormatLinkState(m.link), white)
	buttons, axes := FormatReport(m.rep)
	tinyfont.WriteLine(m.device, font, 0, 38, buttons, white)
	tinyfont.WriteLine(m.device, font, 0, 52, axes, white)
	if m.errMsg != "" {
		tinyfont.WriteLine(m.device, font, 0, 62, m.errMsg, white)
	}
	m.device.Display()
}
