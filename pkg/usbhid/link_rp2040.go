//go:build rp2040

package usbhid

import (
	"device/rp"
	"machine"
)

// LinkEvents receives USB link state edges. *scheduler.Scheduler satisfies
// it.
type LinkEvents interface {
	OnMounted()
	OnUnmounted()
	OnSuspended()
	OnResumed()
}

// Wakeup drives resume signaling on the bus to wake a suspended host.
func (d *Device) Wakeup() {
	rp.USBCTRL_REGS.SIE_CTRL.SetBits(rp.USBCTRL_REGS_SIE_CTRL_RESUME)
}

// PollLinkState translates the controller's status bits into link
// callbacks. Call it once per main loop iteration, before the scheduler
// tick, so the tick always decides against the freshest link state.
func (d *Device) PollLinkState(ev LinkEvents) {
	status := rp.USBCTRL_REGS.SIE_STATUS.Get()

	// SUSPENDED and RESUME latch until cleared; write-1-to-clear after
	// reading so the next edge is observable.
	if status&rp.USBCTRL_REGS_SIE_STATUS_SUSPENDED != 0 {
		rp.USBCTRL_REGS.SIE_STATUS.Set(rp.USBCTRL_REGS_SIE_STATUS_SUSPENDED)
		if d.mounted && !d.suspended {
			d.suspended = true
			ev.OnSuspended()
		}
	}
	if status&rp.USBCTRL_REGS_SIE_STATUS_RESUME != 0 {
		rp.USBCTRL_REGS.SIE_STATUS.Set(rp.USBCTRL_REGS_SIE_STATUS_RESUME)
		if d.suspended {
			d.suspended = false
			ev.OnResumed()
		}
	}

	mounted := machine.USBDev.InitEndpointComplete
	if mounted != d.mounted {
		d.mounted = mounted
		if mounted {
			ev.OnMounted()
		} else {
			d.suspended = false
			ev.OnUnmounted()
		}
	}
}
