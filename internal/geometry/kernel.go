package geometry

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

const (
	// MaxVertexCount is the vertex count at which the polygon degenerates
	// into a smooth circle.
	MaxVertexCount = 50

	// MaxModulus bounds the number of boundary sample points.
	MaxModulus = 1000

	// SnapTolerance is the magnitude below which a coordinate component
	// is treated as rotation round-off and snapped to zero.
	SnapTolerance = 1e-10
)

// IsCircle reports whether the vertex count selects circle mode.
func IsCircle(vertexCount int) bool {
	return vertexCount >= MaxVertexCount
}

// Rotate rotates p around the origin by angle radians, counterclockwise.
func Rotate(p geom.Coord, angle float64) geom.Coord {
	sin, cos := math.Sincos(angle)
	return geom.Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Snap zeroes every coordinate component whose magnitude is below tol.
// Components are snapped independently. A NaN or Inf component fails
// with ErrNotFinite rather than flowing into the pattern.
func Snap(points []geom.Coord, tol float64) ([]geom.Coord, error) {
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("point %d (%v, %v): %w", i, p.X, p.Y, ErrNotFinite)
		}
		if math.Abs(p.X) < tol {
			points[i].X = 0
		}
		if math.Abs(p.Y) < tol {
			points[i].Y = 0
		}
	}
	return points, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Vertices places vertexCount polygon corners on a circle of the given
// radius around center. The first corner sits at angle radians and the
// rest follow counterclockwise. Circle mode has no corners and yields
// nil.
func Vertices(vertexCount int, angle, radius float64, center geom.Coord) ([]geom.Coord, error) {
	if IsCircle(vertexCount) {
		return nil, nil
	}
	points := make([]geom.Coord, vertexCount)
	for j := range points {
		sin, cos := math.Sincos(2 * math.Pi * float64(j) / float64(vertexCount))
		points[j] = Rotate(geom.Coord{X: cos, Y: sin}, angle).Times(radius)
	}
	points, err := Snap(points, SnapTolerance)
	if err != nil {
		return nil, err
	}
	return translate(points, center), nil
}

// PolygonEdgeSamples interpolates samplesPerSide points along each side
// of the polygon, in vertex order. The t=1 endpoint is excluded so the
// next corner is not sampled twice.
func PolygonEdgeSamples(vertices []geom.Coord, samplesPerSide int) []geom.Coord {
	if samplesPerSide <= 0 || len(vertices) == 0 {
		return nil
	}
	points := make([]geom.Coord, 0, len(vertices)*samplesPerSide)
	for i, v1 := range vertices {
		v2 := vertices[(i+1)%len(vertices)]
		for s := 0; s < samplesPerSide; s++ {
			t := float64(s) / float64(samplesPerSide)
			points = append(points, v1.Times(1-t).Plus(v2.Times(t)))
		}
	}
	return points
}

// EdgePoints samples the boundary the multiplication graph is drawn on.
// In circle mode, exactly modulus points are spread around the circle,
// the first at angle 0 before rotation. In polygon mode the modulus is
// truncated to a whole number of samples per side over the supplied
// vertices; a modulus below the vertex count yields no points at all.
func EdgePoints(vertexCount, modulus int, angle, radius float64, center geom.Coord, vertices []geom.Coord) ([]geom.Coord, error) {
	if !IsCircle(vertexCount) {
		return PolygonEdgeSamples(vertices, modulus/vertexCount), nil
	}
	points := make([]geom.Coord, modulus)
	for i := range points {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(modulus))
		points[i] = Rotate(geom.Coord{X: cos, Y: sin}, angle).Times(radius)
	}
	points, err := Snap(points, SnapTolerance)
	if err != nil {
		return nil, err
	}
	return translate(points, center), nil
}

// Connections builds the multiplication graph over n edge points: pair
// i connects start index i to end index i*multiplier mod n. Index 0 is
// always a self-loop, and the map is a permutation only when the
// multiplier and n are coprime.
func Connections(edgePointCount, multiplier int) [][2]int {
	if edgePointCount <= 0 {
		return nil
	}
	pairs := make([][2]int, edgePointCount)
	for i := range pairs {
		pairs[i] = [2]int{i, i * multiplier % edgePointCount}
	}
	return pairs
}

func translate(points []geom.Coord, offset geom.Coord) []geom.Coord {
	for i := range points {
		points[i] = points[i].Plus(offset)
	}
	return points
}
