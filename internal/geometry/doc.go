// Package geometry derives modular multiplication patterns from four
// scalar parameters.
//
// The kernel is a set of pure functions:
//
//   - [Vertices]: polygon corner placement with rotation
//   - [EdgePoints]: boundary sample points, polygon or circle mode
//   - [Connections]: the multiplication graph i -> i*k mod n
//   - [Snap]: zero-snap cleanup of rotation round-off
//
// # Circle Mode
//
// At [MaxVertexCount] vertices the polygon is treated as a smooth
// circle: no corners exist and boundary samples are placed directly on
// the circle. Below that, samples are interpolated along the polygon
// sides, truncating the modulus to a whole number of samples per side.
package geometry
