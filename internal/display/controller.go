// Package display owns the pattern parameters and decides which
// geometry stages must be recomputed when they change.
package display

import (
	"fmt"

	"github.com/jbeda/geom"

	"modviz/internal/geometry"
)

const (
	// DefaultSize is the side length of the square drawing area.
	DefaultSize = 1200.0

	// The pattern occupies a centered disc 90% of the drawing area.
	drawingFraction = 0.9
)

// Initial parameters: a triangle with nine samples doubled.
const (
	initialVertexCount = 3
	initialModulus     = 9
	initialMultiplier  = 2
)

// Controller holds the four pattern parameters and the geometry derived
// from them. The derived slices are caches: ChangeParameters recomputes
// only the stages a given edit invalidates. The controller is owned by
// a single goroutine; it takes no locks.
type Controller struct {
	vertexCount int
	modulus     int
	multiplier  int
	angle       float64 // radians

	size   float64
	radius float64
	center geom.Coord

	vertices    []geom.Coord
	edgePoints  []geom.Coord
	connections [][2]int

	// recompute counters, observed by tests
	vertexComputes int
	edgeComputes   int
	connComputes   int
}

// New returns a controller showing the initial pattern on a square
// drawing area of the given side length (DefaultSize if size <= 0).
func New(size float64) *Controller {
	if size <= 0 {
		size = DefaultSize
	}
	c := &Controller{
		vertexCount: initialVertexCount,
		modulus:     initialModulus,
		multiplier:  initialMultiplier,
		size:        size,
		radius:      size * drawingFraction / 2,
		center:      geom.Coord{X: size / 2, Y: size / 2},
	}
	// The initial parameters are small finite constants, so the kernel
	// cannot fail here.
	_ = c.recomputeVertices()
	_ = c.recomputeEdgePoints()
	c.recomputeConnections()
	return c
}

// ChangeParameters applies a parameter edit, recomputing only the stale
// geometry stages.
//
// Vertices depend on the angle and the vertex count. Edge points depend
// on the vertices and the modulus. Connections depend only on the edge
// point count and the multiplier: a modulus change that leaves the
// truncated per-side sample count unchanged skips them, while any edit
// that changes the edge point count rebuilds them even if the
// multiplier stayed put. The count comparison must therefore run after
// the edge point stage.
func (c *Controller) ChangeParameters(vertexCount, modulus, multiplier int, angle float64) error {
	vertexChanged := c.vertexCount != vertexCount
	modulusChanged := c.modulus != modulus
	multiplierChanged := c.multiplier != multiplier
	angleChanged := c.angle != angle
	prevEdgeCount := len(c.edgePoints)

	c.vertexCount = vertexCount
	c.modulus = modulus
	c.multiplier = multiplier
	c.angle = angle

	if angleChanged || vertexChanged {
		if err := c.recomputeVertices(); err != nil {
			return fmt.Errorf("vertices: %w", err)
		}
	}
	if angleChanged || vertexChanged || modulusChanged {
		if err := c.recomputeEdgePoints(); err != nil {
			return fmt.Errorf("edge points: %w", err)
		}
	}
	if prevEdgeCount != len(c.edgePoints) || multiplierChanged {
		c.recomputeConnections()
	}
	return nil
}

func (c *Controller) recomputeVertices() error {
	v, err := geometry.Vertices(c.vertexCount, c.angle, c.radius, c.center)
	if err != nil {
		return err
	}
	c.vertices = v
	c.vertexComputes++
	return nil
}

func (c *Controller) recomputeEdgePoints() error {
	p, err := geometry.EdgePoints(c.vertexCount, c.modulus, c.angle, c.radius, c.center, c.vertices)
	if err != nil {
		return err
	}
	c.edgePoints = p
	c.edgeComputes++
	return nil
}

func (c *Controller) recomputeConnections() {
	c.connections = geometry.Connections(len(c.edgePoints), c.multiplier)
	c.connComputes++
}

// Scene assembles the renderable description of the cached state. It is
// a pure read: no geometry is recomputed.
func (c *Controller) Scene() Scene {
	s := Scene{
		Circle:      geometry.IsCircle(c.vertexCount),
		EdgePoints:  c.edgePoints,
		Connections: c.connections,
		Caption:     c.caption(),
		Size:        c.size,
	}
	if s.Circle {
		r := geom.Coord{X: c.radius, Y: c.radius}
		s.Bounds = geom.Rect{Min: c.center.Minus(r), Max: c.center.Plus(r)}
	} else {
		s.Vertices = c.vertices
	}
	return s
}

func (c *Controller) caption() string {
	if geometry.IsCircle(c.vertexCount) {
		return fmt.Sprintf("Modular multiplication circle, M=%d, K=%d", c.modulus, c.multiplier)
	}
	return fmt.Sprintf("Modular multiplication polygon, V=%d, M=%d, K=%d", c.vertexCount, c.modulus, c.multiplier)
}

// VertexCount returns the current vertex count.
func (c *Controller) VertexCount() int { return c.vertexCount }

// Modulus returns the current modulus.
func (c *Controller) Modulus() int { return c.modulus }

// Multiplier returns the current multiplier.
func (c *Controller) Multiplier() int { return c.multiplier }

// Angle returns the current rotation in radians.
func (c *Controller) Angle() float64 { return c.angle }

// EdgePointCount returns the number of boundary samples actually
// placed, which is below the modulus whenever truncation drops the
// fractional remainder of samples per side.
func (c *Controller) EdgePointCount() int { return len(c.edgePoints) }
