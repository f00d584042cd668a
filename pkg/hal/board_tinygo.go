//go:build tinygo

package hal

import (
	"machine"
	"sync"
)

// RP2040 routes ADC channel n to GPIO 26+n.
const adcBasePin = 26

// Board implements Digital and Analog on top of the machine package.
type Board struct{}

// NewBoard returns the hardware-backed HAL.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) ConfigureInputPullup(pin Pin) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

func (b *Board) ReadPin(pin Pin) bool {
	return machine.Pin(pin).Get()
}

var adcInitOnce sync.Once

func (b *Board) ConfigureChannel(ch Channel) {
	adcInitOnce.Do(machine.InitADC)
	adc := machine.ADC{Pin: machine.Pin(adcBasePin + Pin(ch))}
	adc.Configure(machine.ADCConfig{})
}

func (b *Board) ReadRaw(ch Channel) uint16 {
	adc := machine.ADC{Pin: machine.Pin(adcBasePin + Pin(ch))}
	// machine.ADC.Get returns a value scaled to 16 bits; the RP2040
	// converter is 12-bit, so shift back down to the raw range.
	return adc.Get() >> 4
}
