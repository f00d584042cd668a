package sampler

import (
	"testing"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/hal"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/registry"
)

// fakeHAL serves digital and analog reads from settable maps. Pins default
// to logic high (released, pull-up wiring).
type fakeHAL struct {
	low map[hal.Pin]bool
	raw map[hal.Channel]uint16
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		low: make(map[hal.Pin]bool),
		raw: make(map[hal.Channel]uint16),
	}
}

func (f *fakeHAL) ConfigureInputPullup(pin hal.Pin) {}
func (f *fakeHAL) ConfigureChannel(ch hal.Channel)  {}
func (f *fakeHAL) ReadPin(pin hal.Pin) bool         { return !f.low[pin] }
func (f *fakeHAL) ReadRaw(ch hal.Channel) uint16    { return f.raw[ch] }
func (f *fakeHAL) press(pin hal.Pin)                { f.low[pin] = true }
func (f *fakeHAL) release(pin hal.Pin)              { f.low[pin] = false }
func (f *fakeHAL) setRaw(ch hal.Channel, v uint16)  { f.raw[ch] = v }

func newTestSampler() (*Sampler, *fakeHAL, *registry.Registry) {
	reg := registry.New(
		registry.Button{Action: registry.ActionSouth, Pin: 7},
		registry.Button{Action: registry.ActionEast, Pin: 8},
		registry.Axis{Channel: 0, Axis: registry.AxisX},
		registry.Axis{Channel: 1, Axis: registry.AxisY},
	)
	h := newFakeHAL()
	return New(reg, h, h), h, reg
}

func TestButtonsAreActiveLow(t *testing.T) {
	smp, h, _ := newTestSampler()

	samples := smp.SampleAll()
	if samples[0].Pressed || samples[1].Pressed {
		t.Errorf("Expected released buttons on high pins, got %+v", samples[:2])
	}

	h.press(7)
	samples = smp.SampleAll()
	if !samples[0].Pressed {
		t.Errorf("Expected pressed button on low pin")
	}
	if samples[1].Pressed {
		t.Errorf("Expected pin 8 still released")
	}

	h.release(7)
	samples = smp.SampleAll()
	if samples[0].Pressed {
		t.Errorf("Expected released button after pin returned high")
	}
}

func TestAxisReadings(t *testing.T) {
	smp, h, _ := newTestSampler()

	h.setRaw(0, 4095)
	h.setRaw(1, 2048)
	samples := smp.SampleAll()

	if samples[2].Raw != 4095 {
		t.Errorf("Expected X raw 4095, got %d", samples[2].Raw)
	}
	if samples[3].Raw != 2048 {
		t.Errorf("Expected Y raw 2048, got %d", samples[3].Raw)
	}
}

func TestAxisRawRetainsMostRecentPass(t *testing.T) {
	smp, h, _ := newTestSampler()

	h.setRaw(0, 100)
	smp.SampleAll()
	if got := smp.AxisRaw(registry.AxisX); got != 100 {
		t.Fatalf("Expected retained X raw 100, got %d", got)
	}

	// Next pass overwrites, no history kept.
	h.setRaw(0, 200)
	smp.SampleAll()
	if got := smp.AxisRaw(registry.AxisX); got != 200 {
		t.Errorf("Expected retained X raw 200, got %d", got)
	}
}

func TestAnyButtonPressed(t *testing.T) {
	smp, h, reg := newTestSampler()

	samples := smp.SampleAll()
	if AnyButtonPressed(reg.Inputs(), samples) {
		t.Errorf("Expected no pressed buttons")
	}

	// An active axis alone never counts as a pressed button.
	h.setRaw(0, 4095)
	samples = smp.SampleAll()
	if AnyButtonPressed(reg.Inputs(), samples) {
		t.Errorf("Axis activity must not count as a button press")
	}

	h.press(8)
	samples = smp.SampleAll()
	if !AnyButtonPressed(reg.Inputs(), samples) {
		t.Errorf("Expected pressed button to be detected")
	}
}
