// Package hal defines the narrow hardware interfaces the input pipeline
// reads through. Core packages only see these interfaces; the machine-backed
// implementation lives behind the tinygo build tag so everything above it
// can be compiled and tested on the host.
package hal

// Pin identifies a GPIO pin by board pin number.
type Pin uint8

// Channel identifies an ADC input channel.
type Channel uint8

// Digital is the digital input surface of the board.
// Reads return the raw electrical level; buttons wired active-low are
// inverted by the sampler, not here.
type Digital interface {
	// ConfigureInputPullup sets the pin up as an input with the internal
	// pull-up enabled.
	ConfigureInputPullup(pin Pin)

	// ReadPin returns the current logic level of the pin.
	ReadPin(pin Pin) bool
}

// Analog is the analog input surface of the board.
type Analog interface {
	// ConfigureChannel prepares an ADC channel for one-shot conversions.
	ConfigureChannel(ch Channel)

	// ReadRaw performs one blocking conversion and returns the raw 12-bit
	// value (0-4095).
	ReadRaw(ch Channel) uint16
}
