package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("top-left dot: got %U", c.Grid[0][0])
	}
	c.Set(1, 3)
	if c.Grid[0][0]&0x80 == 0 {
		t.Error("bottom-right dot of the first cell not set")
	}
}

func TestCanvasSetOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-range Set modified the grid")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(8, 2)
	c.DrawLine(0, 0, 15, 0)
	for x := 0; x < 16; x++ {
		col := x / 2
		if c.Grid[0][col]&rune(dotBits[0][x%2]) == 0 {
			t.Errorf("horizontal line missing sub-pixel %d", x)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("clear left dots behind")
	}
}
