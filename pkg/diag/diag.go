// Package diag implements a small binary serial protocol for inspecting a
// running device from a PC: current input state, link state, firmware
// version. It rides on the USB CDC serial interface next to the HID
// gamepad.
//
// Frame format:
//
//	[SYNC:1][CMD:1][LEN:2][PAYLOAD:LEN][CRC:2]
//	- SYNC: 0xAA (frame start marker)
//	- CMD: Command byte
//	- LEN: Payload length (uint16, little-endian)
//	- PAYLOAD: Variable length data
//	- CRC: CRC16-CCITT of [CMD][LEN][PAYLOAD]
//
// Response format is identical with CMD replaced by a status byte.
package diag

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

const (
	SyncByte = 0xAA

	// Command codes (PC → Device)
	CmdPing          = 0x01
	CmdGetVersion    = 0x02
	CmdGetInputState = 0x03
	CmdGetLinkState  = 0x04

	// Response status codes (Device → PC)
	StatusOK         = 0x00
	StatusError      = 0x01
	StatusInvalidCmd = 0x02
	StatusCRCError   = 0x07
)

// Firmware version reported by CmdGetVersion.
const (
	VersionMajor = 0
	VersionMinor = 1
)

var (
	ErrInvalidFrame = errors.New("invalid frame")
	ErrCRCMismatch  = errors.New("CRC mismatch")
)

// maxPayload bounds a frame; diagnostics payloads are tiny.
const maxPayload = 64

// StateSource provides the live state the handler reports on.
// *scheduler.Scheduler satisfies it.
type StateSource interface {
	Snapshot() (report.Report, scheduler.LinkState)
}

// Handler processes diagnostic commands.
type Handler struct {
	src StateSource
}

// NewHandler creates a handler reading state from src.
func NewHandler(src StateSource) *Handler {
	return &Handler{src: src}
}

// Frame represents a request frame.
type Frame struct {
	Cmd     uint8
	Payload []byte
}

// Response represents a response frame.
type Response struct {
	Status  uint8
	Payload []byte
}

// ReadFrame reads and validates a frame from the reader.
func ReadFrame(r io.Reader) (*Frame, error) {
	sync := make([]byte, 1)
	if _, err := io.ReadFull(r, sync); err != nil {
		return nil, err
	}
	if sync[0] != SyncByte {
		return nil, ErrInvalidFrame
	}

	header := make([]byte, 3)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	cmd := header[0]
	length := binary.LittleEndian.Uint16(header[1:])
	if length > maxPayload {
		return nil, ErrInvalidFrame
	}

	var payload []byte
	if length > 0 {
		payload = make([]byte, length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	}

	crcBytes := make([]byte, 2)
	if _, err := io.ReadFull(r, crcBytes); err != nil {
		return nil, err
	}
	receivedCRC := binary.LittleEndian.Uint16(crcBytes)

	calculatedCRC := calcCRC(append(header, payload...))
	if receivedCRC != calculatedCRC {
		return nil, ErrCRCMismatch
	}

	return &Frame{
		Cmd:     cmd,
		Payload: payload,
	}, nil
}

// WriteResponse writes a response frame to the writer.
func WriteResponse(w io.Writer, resp *Response) error {
	return writeFrame(w, resp.Status, resp.Payload)
}

// WriteFrame writes a request frame (for testing/PC side).
func WriteFrame(w io.Writer, frame *Frame) error {
	return writeFrame(w, frame.Cmd, frame.Payload)
}

func writeFrame(w io.Writer, kind uint8, payload []byte) error {
	payloadLen := uint16(len(payload))
	buf := make([]byte, 0, 6+int(payloadLen))

	buf = append(buf, SyncByte, kind)

	lenBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenBytes, payloadLen)
	buf = append(buf, lenBytes...)

	buf = append(buf, payload...)

	// CRC covers everything after the sync byte.
	crc := calcCRC(buf[1:])
	crcBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(crcBytes, crc)
	buf = append(buf, crcBytes...)

	_, err := w.Write(buf)
	return err
}

// Handle processes a command frame and returns a response.
func (h *Handler) Handle(frame *Frame) *Response {
	switch frame.Cmd {
	case CmdPing:
		return h.handlePing(frame.Payload)
	case CmdGetVersion:
		return h.handleGetVersion()
	case CmdGetInputState:
		return h.handleGetInputState()
	case CmdGetLinkState:
		return h.handleGetLinkState()
	default:
		return &Response{Status: StatusInvalidCmd}
	}
}

// handlePing responds with the same payload (echo).
func (h *Handler) handlePing(payload []byte) *Response {
	return &Response{
		Status:  StatusOK,
		Payload: payload,
	}
}

// handleGetVersion returns the firmware version.
// Response: [Major:1][Minor:1]
func (h *Handler) handleGetVersion() *Response {
	return &Response{
		Status:  StatusOK,
		Payload: []byte{VersionMajor, VersionMinor},
	}
}

// handleGetInputState returns the last built gamepad report.
// Response: marshalled report payload (11 bytes).
func (h *Handler) handleGetInputState() *Response {
	rep, _ := h.src.Snapshot()
	data, err := rep.MarshalBinary()
	if err != nil {
		return &Response{Status: StatusError}
	}
	return &Response{
		Status:  StatusOK,
		Payload: data,
	}
}

// handleGetLinkState returns the USB link state.
// Response: [LinkState:1]
func (h *Handler) handleGetLinkState() *Response {
	_, link := h.src.Snapshot()
	return &Response{
		Status:  StatusOK,
		Payload: []byte{byte(link)},
	}
}

// calcCRC calculates CRC16-CCITT.
// Polynomial: 0x1021, Initial: 0xFFFF
func calcCRC(data []byte) uint16 {
	var crc uint16 = 0xFFFF

	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
