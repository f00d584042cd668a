// Package scheduler drives report emission: it samples inputs on a fixed
// cadence, decides between transmitting, suppressing and requesting a host
// wake-up, and continues multi-report cycles from the transmission-complete
// callback.
//
// All mutable state (link state, emission state, the tick phase) is owned by
// the Scheduler and touched from a single cooperative execution context:
// the main loop calls Tick, and the transport delivers its callbacks from
// that same context. No locking is needed under that assumption; if
// callbacks ever move to an interrupt context, the state here must be
// protected and the link-read-then-decide sequence in Tick made atomic.
package scheduler

import (
	"github.com/joypad/tinygo-joypad-rp2040/pkg/registry"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/sampler"
)

// TickIntervalMS is the minimum interval between sampling passes.
const TickIntervalMS uint32 = 10

// Transport is the narrow surface of the USB stack the scheduler needs.
// SendReport is fire-and-forget; completion arrives asynchronously via
// OnTransmissionComplete.
type Transport interface {
	// Ready reports whether the endpoint can accept a report right now.
	Ready() bool

	// SendReport hands off one report for transmission.
	SendReport(id uint8, payload []byte)

	// Wakeup requests a remote wake-up from a suspended host.
	Wakeup()
}

// Scheduler owns the emission state machine.
type Scheduler struct {
	inputs []registry.Descriptor
	smp    *sampler.Sampler
	tr     Transport
	millis func() uint32

	link           LinkState
	hasActiveInput bool
	startMS        uint32

	// Report categories sent per cycle, advanced by the completion
	// callback. Only the gamepad report exists today; the mechanism is
	// what keeps a second category (say, a consumer-control report)
	// a data change instead of a control-flow change.
	reportIDs []uint8
	pending   int

	last report.Report
}

// New builds a scheduler. millis must be a monotonic millisecond clock.
func New(reg *registry.Registry, smp *sampler.Sampler, tr Transport, millis func() uint32) *Scheduler {
	return &Scheduler{
		inputs:    reg.Inputs(),
		smp:       smp,
		tr:        tr,
		millis:    millis,
		reportIDs: []uint8{report.IDGamepad},
		// Start with the cycle complete so a completion callback that
		// arrives before the first tick is a no-op.
		pending: 1,
	}
}

// Tick runs one polling pass. It returns immediately until the 10ms
// interval has elapsed, then samples every input and either requests a
// wake-up (suspended link, button held) or starts a report cycle. The link
// state is read fresh here, after sampling, so a suspend/resume callback
// that ran earlier in the same loop iteration is always honored; wake-up
// and transmission never both happen in one tick.
func (sc *Scheduler) Tick() {
	now := sc.millis()
	if now-sc.startMS < TickIntervalMS {
		return
	}
	sc.startMS += TickIntervalMS

	samples := sc.smp.SampleAll()

	if sc.link == LinkSuspended && sampler.AnyButtonPressed(sc.inputs, samples) {
		sc.tr.Wakeup()
		return
	}

	sc.pending = 0
	sc.send(samples)
}

// OnTransmissionComplete must be called by the transport after a report has
// been physically sent. It advances the pending report category and, if
// another category remains in this cycle, sends it from a fresh sampling
// pass.
func (sc *Scheduler) OnTransmissionComplete(id uint8) {
	if sc.pending < len(sc.reportIDs) && sc.reportIDs[sc.pending] == id {
		sc.pending++
	}
	if sc.pending >= len(sc.reportIDs) {
		return
	}
	sc.send(sc.smp.SampleAll())
}

// send builds the pending category's report and applies the emission
// policy: a non-neutral report is always transmitted; the first neutral
// report after activity is transmitted once so the host sees every input
// released; further neutral reports are suppressed. A not-ready transport
// drops the report without touching the emission state, so a pending
// release is retried next tick.
func (sc *Scheduler) send(samples []sampler.Sample) {
	if sc.pending >= len(sc.reportIDs) {
		return
	}

	rep := report.Build(sc.inputs, samples)
	sc.last = rep

	active := !rep.IsNeutral()
	if !active && !sc.hasActiveInput {
		return
	}
	if !sc.tr.Ready() {
		return
	}

	payload, _ := rep.MarshalBinary()
	sc.tr.SendReport(sc.reportIDs[sc.pending], payload)
	sc.hasActiveInput = active
}

// Snapshot returns the last built report and the current link state, for
// the diagnostics channel and the debug display.
func (sc *Scheduler) Snapshot() (report.Report, LinkState) {
	return sc.last, sc.link
}
