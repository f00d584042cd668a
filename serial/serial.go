// Package serial services the diagnostics link over the USB CDC serial
// interface. It reads diag frames from the port, dispatches them to the
// handler and writes the responses back.
package serial

import (
	"time"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/diag"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/display"
)

// Port is the byte-level serial interface. machine.Serial satisfies it.
type Port interface {
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

type Serial struct {
	port    Port
	handler *diag.Handler
	display *display.Manager
}

// New wires a serial servicer to a port and a diagnostics handler. The
// display may be nil.
func New(port Port, handler *diag.Handler, disp *display.Manager) *Serial {
	return &Serial{
		port:    port,
		handler: handler,
		display: disp,
	}
}

// Handle services the link forever. Run it on its own goroutine.
func (s *Serial) Handle() {
	r := &portReader{port: s.port}
	for {
		frame, err := diag.ReadFrame(r)
		if err != nil {
			if err == diag.ErrCRCMismatch {
				diag.WriteResponse(s.port, &diag.Response{Status: diag.StatusCRCError})
			}
			// On a bad sync byte just keep scanning; ReadFrame consumed
			// one byte, so the stream resynchronizes on its own.
			continue
		}

		resp := s.handler.Handle(frame)
		if err := diag.WriteResponse(s.port, resp); err != nil {
			s.display.ShowError("resp write")
		}
	}
}

// portReader adapts Port to io.Reader, blocking until a byte arrives.
// machine.Serial reports an error on an empty receive buffer, which here
// just means wait.
type portReader struct {
	port Port
}

func (r *portReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		b, err := r.port.ReadByte()
		if err != nil {
			time.Sleep(500 * time.Microsecond)
			continue
		}
		p[0] = b
		return 1, nil
	}
}
