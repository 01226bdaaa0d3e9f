// Package viz rasterizes modular multiplication scenes for the
// terminal.
//
//   - [Canvas]: Braille-based pixel canvas with Bresenham line drawing
//   - [Renderer]: maps a display.Scene onto the canvas
//
// The renderer is the drawing collaborator of the display controller:
// it reads a scene value and produces a frame string, it never touches
// the controller's caches.
package viz
