// Package raster provides integer scan conversion of circles, rectangles
// and lines.
//
// All routines work in device space and write through a Target. Coordinates
// outside the target are dropped; loops are clipped to the target so that
// very large shapes cost no more than the visible area.
package raster

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Target receives pixels.
// SetPixel must ignore coordinates outside [0, Width) × [0, Height).
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGB)
}

// HLine sets the pixels [x0, x1] on row y. The endpoints may be given in
// either order.
func HLine(t Target, x0, x1, y int, c RGB) {
	if y < 0 || y >= t.Height() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, t.Width()-1)
	for x := x0; x <= x1; x++ {
		t.SetPixel(x, y, c)
	}
}

// VLine sets the pixels [y0, y1] in column x.
func VLine(t Target, x, y0, y1 int, c RGB) {
	if x < 0 || x >= t.Width() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, t.Height()-1)
	for y := y0; y <= y1; y++ {
		t.SetPixel(x, y, c)
	}
}
