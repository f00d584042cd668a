// Package usbhid adapts the TinyGo USB stack to the scheduler's transport
// interface and carries the gamepad HID report descriptor.
package usbhid

// GamepadHIDReportDescriptor describes the 12-byte gamepad report (1 byte
// report ID + 11 byte payload): 32 buttons, six unsigned 8-bit axes and a
// hat switch. The host parses reports against this, so the layout must stay
// in lockstep with report.Report.MarshalBinary.
var GamepadHIDReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x05, // Usage (Game Pad)
	0xa1, 0x01, // Collection (Application)
	0x85, 0x01, // Report ID (1)
	// 32 buttons, one bit each
	0x05, 0x09, // Usage Page (Button)
	0x19, 0x01, // Usage Minimum (1)
	0x29, 0x20, // Usage Maximum (32)
	0x15, 0x00, // Logical Minimum (0)
	0x25, 0x01, // Logical Maximum (1)
	0x75, 0x01, // Report Size (1)
	0x95, 0x20, // Report Count (32)
	0x81, 0x02, // Input (Data,Var,Abs)
	// Axes: X, Y, Z, Rz, Rx, Ry, unsigned 0-255
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x30, // Usage (X)
	0x09, 0x31, // Usage (Y)
	0x09, 0x32, // Usage (Z)
	0x09, 0x35, // Usage (Rz)
	0x09, 0x33, // Usage (Rx)
	0x09, 0x34, // Usage (Ry)
	0x15, 0x00, // Logical Minimum (0)
	0x26, 0xff, 0x00, // Logical Maximum (255)
	0x75, 0x08, // Report Size (8)
	0x95, 0x06, // Report Count (6)
	0x81, 0x02, // Input (Data,Var,Abs)
	// Hat switch, 0 = centered
	0x09, 0x39, // Usage (Hat Switch)
	0x15, 0x00, // Logical Minimum (0)
	0x25, 0x08, // Logical Maximum (8)
	0x75, 0x08, // Report Size (8)
	0x95, 0x01, // Report Count (1)
	0x81, 0x02, // Input (Data,Var,Abs)
	0xc0, // End Collection
}
