package scheduler

// LinkState is the USB connection lifecycle phase as seen by the device.
// It is written only through the four callbacks below, which the transport
// layer invokes from the same execution context as Tick.
type LinkState uint8

const (
	LinkNotMounted LinkState = iota
	LinkMounted
	LinkSuspended
)

func (s LinkState) String() string {
	switch s {
	case LinkNotMounted:
		return "not mounted"
	case LinkMounted:
		return "mounted"
	case LinkSuspended:
		return "suspended"
	}
	return "unknown"
}

// OnMounted records that the host finished enumerating the device.
func (s *Scheduler) OnMounted() { s.link = LinkMounted }

// OnUnmounted records that the USB connection was lost.
func (s *Scheduler) OnUnmounted() { s.link = LinkNotMounted }

// OnSuspended records that the bus entered low-power suspend.
func (s *Scheduler) OnSuspended() { s.link = LinkSuspended }

// OnResumed records that the bus resumed from suspend.
func (s *Scheduler) OnResumed() { s.link = LinkMounted }

// Link returns the current link state.
func (s *Scheduler) Link() LinkState { return s.link }
