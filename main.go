//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/diag"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/display"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/hal"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/led"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/registry"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/sampler"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/usbhid"
	"github.com/joypad/tinygo-joypad-rp2040/serial"
)

// External status LED; the blink pattern encodes the USB link state.
const ledPin = machine.GPIO18

func main() {
	board := hal.NewBoard()

	reg := registry.New(registry.DefaultLayout()...)
	if err := reg.Init(board, board); err != nil {
		fatal(err)
	}

	smp := sampler.New(reg, board, board)
	dev := usbhid.NewDevice()
	sched := scheduler.New(reg, smp, dev, millis)
	dev.NotifyComplete(sched.OnTransmissionComplete)

	pin := ledPin
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	blinker := led.NewBlinker(pin.Set)

	disp := display.NewManager()
	go serial.New(machine.Serial, diag.NewHandler(sched), disp).Handle()

	for {
		dev.PollLinkState(sched)
		blinker.SetInterval(led.IntervalFor(sched.Link()))
		blinker.Task(millis())
		sched.Tick()

		rep, link := sched.Snapshot()
		disp.ShowLinkState(link)
		disp.ShowReport(rep)

		time.Sleep(time.Millisecond)
	}
}

var bootTime = time.Now()

// millis is the monotonic millisecond clock the scheduler and LED share.
func millis() uint32 {
	return uint32(time.Since(bootTime).Milliseconds())
}

// fatal signals a build-time misconfiguration (duplicate pin or channel in
// the input table) with a steady fast blink. The device never enumerates.
func fatal(err error) {
	println("init:", err.Error())
	pin := ledPin
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	on := false
	for {
		pin.Set(on)
		on = !on
		time.Sleep(50 * time.Millisecond)
	}
}
