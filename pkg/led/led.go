// Package led drives the status LED. The blink interval encodes the USB
// link state: fast while unmounted, slow once mounted, very slow while
// suspended.
package led

import (
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

// Blink intervals in milliseconds per link state.
const (
	IntervalNotMountedMS uint32 = 250
	IntervalMountedMS    uint32 = 1000
	IntervalSuspendedMS  uint32 = 2500
)

// IntervalFor returns the blink interval for a link state.
func IntervalFor(s scheduler.LinkState) uint32 {
	switch s {
	case scheduler.LinkMounted:
		return IntervalMountedMS
	case scheduler.LinkSuspended:
		return IntervalSuspendedMS
	}
	return IntervalNotMountedMS
}

// Blinker toggles an LED on a fixed interval. The set function receives the
// desired LED level; main wires it to the hardware pin.
type Blinker struct {
	set        func(bool)
	intervalMS uint32
	startMS    uint32
	on         bool
}

// NewBlinker builds a blinker starting in the not-mounted pattern.
func NewBlinker(set func(bool)) *Blinker {
	return &Blinker{
		set:        set,
		intervalMS: IntervalNotMountedMS,
	}
}

// SetInterval changes the blink interval. A zero interval disables
// blinking.
func (b *Blinker) SetInterval(ms uint32) {
	b.intervalMS = ms
}

// Task toggles the LED if the interval has elapsed. Call it from the main
// loop with the monotonic millisecond clock.
func (b *Blinker) Task(nowMS uint32) {
	if b.intervalMS == 0 {
		return
	}
	if nowMS-b.startMS < b.intervalMS {
		return
	}
	b.startMS += b.intervalMS

	b.set(b.on)
	b.on = !b.on
}
