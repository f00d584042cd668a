// Package registry holds the fixed table of physical inputs: which GPIO pin
// maps to which gamepad button bit, and which ADC channel feeds which
// joystick axis. The table is defined at build time and never mutated after
// Init.
package registry

import (
	"errors"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/hal"
)

// Action is a button bit within the report's 32-bit button mask. The bit
// assignment matches the host-side HID report descriptor and must not be
// reordered.
type Action uint32

const (
	ActionSouth  Action = 1 << 0
	ActionEast   Action = 1 << 1
	ActionC      Action = 1 << 2
	ActionWest   Action = 1 << 3
	ActionNorth  Action = 1 << 4
	ActionZ      Action = 1 << 5
	ActionL1     Action = 1 << 6
	ActionR1     Action = 1 << 7
	ActionL2     Action = 1 << 8
	ActionR2     Action = 1 << 9
	ActionSelect Action = 1 << 10
	ActionStart  Action = 1 << 11
	ActionMode   Action = 1 << 12
	ActionThumbL Action = 1 << 13
	ActionThumbR Action = 1 << 14
)

// AxisSel selects which report axis an analog channel feeds.
type AxisSel uint8

const (
	AxisX AxisSel = iota
	AxisY
)

// Descriptor describes one physical input. It is a closed sum:
// the only implementations are Button and Axis.
type Descriptor interface {
	isDescriptor()
}

// Button is a digital input on a GPIO pin, wired active-low with a pull-up.
type Button struct {
	Action Action
	Pin    hal.Pin
}

// Axis is an analog input on an ADC channel.
type Axis struct {
	Channel hal.Channel
	Axis    AxisSel
}

func (Button) isDescriptor() {}
func (Axis) isDescriptor()   {}

var (
	ErrDuplicatePin     = errors.New("duplicate button pin")
	ErrDuplicateChannel = errors.New("duplicate axis channel")
)

// Registry is the ordered, fixed-size input table.
type Registry struct {
	inputs []Descriptor
}

// New builds a registry from the given descriptors. The slice is owned by
// the registry afterwards.
func New(inputs ...Descriptor) *Registry {
	return &Registry{inputs: inputs}
}

// DefaultLayout is the board wiring this firmware ships with: seven buttons
// and one two-axis joystick on ADC channels 0 and 1.
func DefaultLayout() []Descriptor {
	return []Descriptor{
		Button{Action: ActionSouth, Pin: 7},
		Button{Action: ActionEast, Pin: 8},
		Button{Action: ActionNorth, Pin: 5},
		Button{Action: ActionWest, Pin: 6},
		Button{Action: ActionMode, Pin: 9},
		Button{Action: ActionSelect, Pin: 20},
		Button{Action: ActionStart, Pin: 21},
		Axis{Channel: 0, Axis: AxisX},
		Axis{Channel: 1, Axis: AxisY},
	}
}

// Inputs returns the descriptor table. Callers must not modify it.
func (r *Registry) Inputs() []Descriptor {
	return r.inputs
}

// Init validates the table and performs the one-time hardware setup: every
// button pin becomes an input with pull-up, every axis channel is enabled.
// A pin or channel appearing twice is a build-time misconfiguration and is
// rejected before any hardware is touched.
func (r *Registry) Init(dig hal.Digital, ana hal.Analog) error {
	if err := r.validate(); err != nil {
		return err
	}
	for _, in := range r.inputs {
		switch d := in.(type) {
		case Button:
			dig.ConfigureInputPullup(d.Pin)
		case Axis:
			ana.ConfigureChannel(d.Channel)
		}
	}
	return nil
}

func (r *Registry) validate() error {
	var pins [256]bool
	var channels [256]bool
	for _, in := range r.inputs {
		switch d := in.(type) {
		case Button:
			if pins[d.Pin] {
				return ErrDuplicatePin
			}
			pins[d.Pin] = true
		case Axis:
			if channels[d.Channel] {
				return ErrDuplicateChannel
			}
			channels[d.Channel] = true
		}
	}
	return nil
}
