//go:build rp2040

package usbhid

import (
	"machine"
	"machine/usb"
	"machine/usb/descriptor"
	"machine/usb/hid"
)

// Device is the machine-backed transport. It implements the scheduler's
// Transport interface plus the hidDevicer interface the TinyGo HID
// subsystem calls from the USB interrupt.
type Device struct {
	buf        *hid.RingBuffer
	waitTxc    bool
	lastSent   uint8
	onComplete func(id uint8)

	mounted   bool
	suspended bool
}

// NewDevice registers the gamepad with the USB stack. It must be called
// before USB enumeration starts, since it patches the HID report descriptor
// the host will read.
func NewDevice() *Device {
	d := &Device{
		buf: hid.NewRingBuffer(),
	}
	// The stock CDC+HID descriptor carries TinyGo's default HID report
	// layout; swap in ours before the host asks for it.
	descriptor.CDCHID.HID[usb.HID_INTERFACE] = GamepadHIDReportDescriptor
	hid.SetHandler(d)
	return d
}

// NotifyComplete sets the callback invoked after a queued report has been
// physically sent. The callback runs on the same execution context as the
// main loop's USB servicing.
func (d *Device) NotifyComplete(fn func(id uint8)) {
	d.onComplete = fn
}

// Ready reports whether the IN endpoint can take a report right now.
func (d *Device) Ready() bool {
	return machine.USBDev.InitEndpointComplete && !d.waitTxc
}

// SendReport queues one report ID plus payload for transmission.
func (d *Device) SendReport(id uint8, payload []byte) {
	pkt := make([]byte, 0, 1+len(payload))
	pkt = append(pkt, id)
	pkt = append(pkt, payload...)
	d.tx(pkt)
}

func (d *Device) tx(b []byte) {
	if !machine.USBDev.InitEndpointComplete {
		return
	}
	if d.waitTxc {
		d.buf.Put(b)
		return
	}
	d.lastSent = b[0]
	d.waitTxc = true
	hid.SendUSBPacket(b)
}

// TxHandler is called by the USB stack when the endpoint finished the
// previous packet. Drains the queue first; once it runs dry the last
// report is complete and the scheduler gets its continuation callback.
func (d *Device) TxHandler() bool {
	d.waitTxc = false
	if b, ok := d.buf.Get(); ok {
		d.lastSent = b[0]
		d.waitTxc = true
		hid.SendUSBPacket(b)
		return true
	}
	if d.onComplete != nil {
		d.onComplete(d.lastSent)
	}
	return false
}

// RxHandler handles output reports from the host. The gamepad has none.
func (d *Device) RxHandler(b []byte) bool {
	return false
}
