package display

import "github.com/jbeda/geom"

// Scene is a renderable description of the current pattern, assembled
// fresh per frame from the controller's caches and discarded after
// drawing.
type Scene struct {
	// Circle selects the outline: the bounding Bounds of the circle, or
	// the Vertices loop of the polygon.
	Circle   bool
	Bounds   geom.Rect
	Vertices []geom.Coord

	// EdgePoints are the boundary samples; Connections index into them
	// as (start, end) pairs.
	EdgePoints  []geom.Coord
	Connections [][2]int

	Caption string

	// Size is the side length of the square drawing area the scene
	// coordinates live in.
	Size float64
}
