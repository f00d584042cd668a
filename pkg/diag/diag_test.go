package diag

import (
	"bytes"
	"testing"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

type fakeSource struct {
	rep  report.Report
	link scheduler.LinkState
}

func (f *fakeSource) Snapshot() (report.Report, scheduler.LinkState) {
	return f.rep, f.link
}

func newTestHandler() (*Handler, *fakeSource) {
	src := &fakeSource{}
	return NewHandler(src), src
}

func TestFrameEncodingDecoding(t *testing.T) {
	original := &Frame{
		Cmd:     CmdPing,
		Payload: []byte{1, 2, 3, 4},
	}

	var buf bytes.Buffer
	if err := WriteFrame(&buf, original); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}

	decoded, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}

	if decoded.Cmd != original.Cmd {
		t.Errorf("Cmd: expected 0x%x, got 0x%x", original.Cmd, decoded.Cmd)
	}
	if !bytes.Equal(decoded.Payload, original.Payload) {
		t.Errorf("Payload: expected %v, got %v", original.Payload, decoded.Payload)
	}
}

func TestReadFrameRejectsBadSync(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x55, CmdPing, 0, 0, 0, 0})
	if _, err := ReadFrame(buf); err != ErrInvalidFrame {
		t.Errorf("Expected ErrInvalidFrame, got %v", err)
	}
}

func TestReadFrameDetectsCorruption(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, &Frame{Cmd: CmdPing, Payload: []byte{9, 9}}); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}

	data := buf.Bytes()
	data[4] ^= 0xFF // flip a payload byte

	if _, err := ReadFrame(bytes.NewBuffer(data)); err != ErrCRCMismatch {
		t.Errorf("Expected ErrCRCMismatch, got %v", err)
	}
}

func TestPingCommand(t *testing.T) {
	handler, _ := newTestHandler()

	frame := &Frame{
		Cmd:     CmdPing,
		Payload: []byte{0xAA, 0xBB, 0xCC},
	}

	resp := handler.Handle(frame)

	if resp.Status != StatusOK {
		t.Errorf("Expected status OK, got 0x%x", resp.Status)
	}
	if !bytes.Equal(resp.Payload, frame.Payload) {
		t.Errorf("Expected echo payload, got %v", resp.Payload)
	}
}

func TestGetVersion(t *testing.T) {
	handler, _ := newTestHandler()

	resp := handler.Handle(&Frame{Cmd: CmdGetVersion})
	if resp.Status != StatusOK {
		t.Fatalf("Expected status OK, got 0x%x", resp.Status)
	}
	if !bytes.Equal(resp.Payload, []byte{VersionMajor, VersionMinor}) {
		t.Errorf("Expected version payload, got %v", resp.Payload)
	}
}

func TestGetInputState(t *testing.T) {
	handler, src := newTestHandler()
	src.rep = report.Report{Buttons: 0x1, X: 0x80}

	resp := handler.Handle(&Frame{Cmd: CmdGetInputState})
	if resp.Status != StatusOK {
		t.Fatalf("Expected status OK, got 0x%x", resp.Status)
	}

	var rep report.Report
	if err := rep.UnmarshalBinary(resp.Payload); err != nil {
		t.Fatalf("Bad payload: %v", err)
	}
	if rep != src.rep {
		t.Errorf("Expected snapshot %+v, got %+v", src.rep, rep)
	}
}

func TestGetLinkState(t *testing.T) {
	handler, src := newTestHandler()
	src.link = scheduler.LinkSuspended

	resp := handler.Handle(&Frame{Cmd: CmdGetLinkState})
	if resp.Status != StatusOK {
		t.Fatalf("Expected status OK, got 0x%x", resp.Status)
	}
	if len(resp.Payload) != 1 || resp.Payload[0] != byte(scheduler.LinkSuspended) {
		t.Errorf("Expected link state payload, got %v", resp.Payload)
	}
}

func TestUnknownCommand(t *testing.T) {
	handler, _ := newTestHandler()

	resp := handler.Handle(&Frame{Cmd: 0x7F})
	if resp.Status != StatusInvalidCmd {
		t.Errorf("Expected StatusInvalidCmd, got 0x%x", resp.Status)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	resp := &Response{Status: StatusOK, Payload: []byte{4, 5, 6}}
	if err := WriteResponse(&buf, resp); err != nil {
		t.Fatalf("WriteResponse failed: %v", err)
	}

	// A response frame decodes with the status byte in the Cmd slot.
	decoded, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	if decoded.Cmd != StatusOK {
		t.Errorf("Expected status 0x%x, got 0x%x", StatusOK, decoded.Cmd)
	}
	if !bytes.Equal(decoded.Payload, resp.Payload) {
		t.Errorf("Expected payload %v, got %v", resp.Payload, decoded.Payload)
	}
}
