package viz

import (
	"strings"
	"testing"

	"modviz/internal/display"
)

func hasDots(frame string) bool {
	for _, r := range frame {
		if r > 0x2800 && r <= 0x28FF {
			return true
		}
	}
	return false
}

func TestRenderPolygonScene(t *testing.T) {
	ctrl := display.New(0)
	if err := ctrl.ChangeParameters(4, 100, 2, 0); err != nil {
		t.Fatal(err)
	}
	frame := NewRenderer(40, 20).Render(ctrl.Scene())
	if !hasDots(frame) {
		t.Error("polygon frame is blank")
	}
	if got := strings.Count(frame, "\n"); got != 20 {
		t.Errorf("frame has %d rows, want 20", got)
	}
}

func TestRenderCircleScene(t *testing.T) {
	ctrl := display.New(0)
	if err := ctrl.ChangeParameters(50, 200, 2, 0); err != nil {
		t.Fatal(err)
	}
	frame := NewRenderer(40, 20).Render(ctrl.Scene())
	if !hasDots(frame) {
		t.Error("circle frame is blank")
	}
}

func TestRenderEmptyPattern(t *testing.T) {
	ctrl := display.New(0)
	// Modulus below vertex count: outline only, no chords.
	if err := ctrl.ChangeParameters(4, 3, 2, 0); err != nil {
		t.Fatal(err)
	}
	frame := NewRenderer(40, 20).Render(ctrl.Scene())
	if !hasDots(frame) {
		t.Error("outline should still be drawn for an empty pattern")
	}
}

func TestRendererResize(t *testing.T) {
	r := NewRenderer(40, 20)
	r.Resize(10, 5)
	ctrl := display.New(0)
	frame := r.Render(ctrl.Scene())
	if got := strings.Count(frame, "\n"); got != 5 {
		t.Errorf("frame has %d rows after resize, want 5", got)
	}
	// Degenerate sizes are ignored.
	r.Resize(0, -1)
	if r.canvas.Height != 5 {
		t.Error("invalid resize replaced the canvas")
	}
}
