// Package report defines the HID gamepad report and builds it from raw
// input samples.
//
// Wire layout (11 bytes, little-endian, report ID prefixed by the
// transport):
//
//	[0-3]: buttons (uint32 bitmask)
//	[4]:   x
//	[5]:   y
//	[6]:   z
//	[7]:   rz
//	[8]:   rx
//	[9]:   ry
//	[10]:  hat
package report

import (
	"encoding/binary"
	"errors"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/registry"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/sampler"
)

var ErrInvalidSize = errors.New("invalid report size")

// IDGamepad is the report ID, matching the HID report descriptor.
const IDGamepad uint8 = 1

// PayloadSize is the marshalled report size, not counting the report ID.
const PayloadSize = 11

// Report is the fixed-layout gamepad state. The zero value is the neutral
// report. Only Buttons, X and Y are driven by this hardware; the remaining
// axes and the hat stay zero and are reserved for inputs that are not
// physically present.
type Report struct {
	Buttons uint32
	X       uint8
	Y       uint8
	Z       uint8
	Rz      uint8
	Rx      uint8
	Ry      uint8
	Hat     uint8
}

// Build maps one sampling pass onto a fresh report. Pressed buttons OR
// their action bit into the mask, so two descriptors sharing an action
// compose to the same single bit. Axis readings are scaled from the 12-bit
// raw range to 8 bits by truncating division (4095/16 = 255); no deadzone
// or centering is applied.
func Build(inputs []registry.Descriptor, samples []sampler.Sample) Report {
	var r Report
	for i, in := range inputs {
		switch d := in.(type) {
		case registry.Button:
			if samples[i].Pressed {
				r.Buttons |= uint32(d.Action)
			}
		case registry.Axis:
			v := uint8(samples[i].Raw / 16)
			switch d.Axis {
			case registry.AxisX:
				r.X = v
			case registry.AxisY:
				r.Y = v
			}
		}
	}
	return r
}

// IsNeutral reports whether every field is at rest. The arithmetic sum is
// equivalent to an all-zero test because every field is unsigned; keep it
// that way if fields are ever added.
func (r Report) IsNeutral() bool {
	sum := r.Buttons +
		uint32(r.X) + uint32(r.Y) + uint32(r.Z) +
		uint32(r.Rz) + uint32(r.Rx) + uint32(r.Ry) +
		uint32(r.Hat)
	return sum == 0
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r Report) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PayloadSize)
	binary.LittleEndian.PutUint32(buf[0:], r.Buttons)
	buf[4] = r.X
	buf[5] = r.Y
	buf[6] = r.Z
	buf[7] = r.Rz
	buf[8] = r.Rx
	buf[9] = r.Ry
	buf[10] = r.Hat
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < PayloadSize {
		return ErrInvalidSize
	}
	r.Buttons = binary.LittleEndian.Uint32(data[0:])
	r.X = data[4]
	r.Y = data[5]
	r.Z = data[6]
	r.Rz = data[7]
	r.Rx = data[8]
	r.Ry = data[9]
	r.Hat = data[10]
	return nil
}
