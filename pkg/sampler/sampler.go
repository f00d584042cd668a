// Package sampler reads raw values for every input in the registry.
package sampler

import (
	"github.com/joypad/tinygo-joypad-rp2040/pkg/hal"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/registry"
)

// Sample is one raw reading, paired positionally with the registry entry
// that produced it. Pressed is meaningful for buttons, Raw for axes.
type Sample struct {
	Pressed bool
	Raw     uint16 // 0-4095
}

// Sampler produces one Sample per registry entry on each pass.
type Sampler struct {
	inputs []registry.Descriptor
	dig    hal.Digital
	ana    hal.Analog

	samples []Sample
	// Most recent axis readings, overwritten every pass. Indexed by
	// registry.AxisSel.
	axisRaw [2]uint16
}

// New builds a sampler over the registry's inputs.
func New(reg *registry.Registry, dig hal.Digital, ana hal.Analog) *Sampler {
	inputs := reg.Inputs()
	return &Sampler{
		inputs:  inputs,
		dig:     dig,
		ana:     ana,
		samples: make([]Sample, len(inputs)),
	}
}

// SampleAll reads every input once and returns the samples in registry
// order. Buttons are wired active-low, so a pressed button reads as logic
// low and is reported here as Pressed == true. The returned slice is reused
// between passes.
func (s *Sampler) SampleAll() []Sample {
	for i, in := range s.inputs {
		switch d := in.(type) {
		case registry.Button:
			s.samples[i] = Sample{Pressed: !s.dig.ReadPin(d.Pin)}
		case registry.Axis:
			raw := s.ana.ReadRaw(d.Channel)
			s.axisRaw[d.Axis] = raw
			s.samples[i] = Sample{Raw: raw}
		}
	}
	return s.samples
}

// AxisRaw returns the most recent raw reading for the given axis.
func (s *Sampler) AxisRaw(sel registry.AxisSel) uint16 {
	return s.axisRaw[sel]
}

// AnyButtonPressed reports whether any button sample in the pass is active.
// Axis samples are ignored; only a pressed button may wake a suspended host.
func AnyButtonPressed(inputs []registry.Descriptor, samples []Sample) bool {
	for i, in := range inputs {
		if _, ok := in.(registry.Button); ok && samples[i].Pressed {
			return true
		}
	}
	return false
}
