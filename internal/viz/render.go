package viz

import (
	"math"

	"github.com/jbeda/geom"

	"modviz/internal/display"
)

// circleSegments is the number of chords used to approximate the
// circle outline.
const circleSegments = 256

// Renderer rasterizes display scenes onto a braille canvas.
type Renderer struct {
	canvas *Canvas
}

// NewRenderer sizes the renderer in terminal cells.
func NewRenderer(width, height int) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Renderer{canvas: NewCanvas(width, height)}
}

// Resize replaces the canvas to fit a new terminal size.
func (r *Renderer) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	r.canvas = NewCanvas(width, height)
}

// Render draws the scene outline and every multiplication chord, and
// returns the braille frame. Self-loop connections mark a single point.
func (r *Renderer) Render(s display.Scene) string {
	r.canvas.Clear()
	r.drawOutline(s)
	for _, pair := range s.Connections {
		start, end := s.EdgePoints[pair[0]], s.EdgePoints[pair[1]]
		x0, y0 := r.project(start, s.Size)
		x1, y1 := r.project(end, s.Size)
		r.canvas.DrawLine(x0, y0, x1, y1)
	}
	return r.canvas.String()
}

func (r *Renderer) drawOutline(s display.Scene) {
	if s.Circle {
		// Inscribed circle of the bounding box, approximated by chords.
		cx := (s.Bounds.Min.X + s.Bounds.Max.X) / 2
		cy := (s.Bounds.Min.Y + s.Bounds.Max.Y) / 2
		radius := s.Bounds.Width() / 2
		prev := geom.Coord{X: cx + radius, Y: cy}
		for i := 1; i <= circleSegments; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
			p := geom.Coord{X: cx + radius*cos, Y: cy + radius*sin}
			x0, y0 := r.project(prev, s.Size)
			x1, y1 := r.project(p, s.Size)
			r.canvas.DrawLine(x0, y0, x1, y1)
			prev = p
		}
		return
	}
	for i, v := range s.Vertices {
		next := s.Vertices[(i+1)%len(s.Vertices)]
		x0, y0 := r.project(v, s.Size)
		x1, y1 := r.project(next, s.Size)
		r.canvas.DrawLine(x0, y0, x1, y1)
	}
}

// project maps a scene coordinate in [0, size] onto canvas sub-pixels.
func (r *Renderer) project(p geom.Coord, size float64) (int, int) {
	cw, ch := r.canvas.Width*2, r.canvas.Height*4
	x := int(math.Round(p.X / size * float64(cw-1)))
	y := int(math.Round(p.Y / size * float64(ch-1)))
	return x, y
}
