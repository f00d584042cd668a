package display

import (
	"testing"

	"github.com/joypad/tinygo-joypad-rp2040/pkg/report"
	"github.com/joypad/tinygo-joypad-rp2040/pkg/scheduler"
)

func TestFormatLinkState(t *testing.T) {
	tests := []struct {
		state scheduler.LinkState
		want  string
	}{
		{scheduler.LinkNotMounted, "USB: not mounted"},
		{scheduler.LinkMounted, "USB: mounted"},
		{scheduler.LinkSuspended, "USB: suspended"},
	}

	for _, tt := range tests {
		if got := FormatLinkState(tt.state); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestFormatReport(t *testing.T) {
	r := report.Report{Buttons: 0x00000401, X: 0x1F, Y: 0xFF}

	buttons, axes := FormatReport(r)
	if buttons != "B:00000401 H:0" {
		t.Errorf("Expected button row, got %q", buttons)
	}
	if axes != "X:1F Y:FF" {
		t.Errorf("Expected axis row, got %q", axes)
	}
}
