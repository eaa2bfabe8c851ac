package svgedit

import "math"

// Zoom limits applied by ZoomAt. SetZoom accepts any positive value.
const (
	MinZoom = 0.05
	MaxZoom = 40.0
)

// View is the pan/zoom state that maps document space to device space:
//
//	device = document*zoom + pan
//
// The zero value is the identity view (zoom 1, no pan).
type View struct {
	PanX, PanY int

	zoom float64 // 0 means 1
}

// NewView returns a view with the given pan offset and zoom. A zoom that is
// not strictly positive and finite is replaced by 1.
func NewView(panX, panY int, zoom float64) View {
	v := View{PanX: panX, PanY: panY}
	v.SetZoom(zoom)
	return v
}

// Zoom returns the zoom factor, always > 0.
func (v View) Zoom() float64 {
	if v.zoom == 0 {
		return 1
	}
	return v.zoom
}

// SetZoom sets the zoom factor. Values that are not strictly positive and
// finite are rejected, leaving the view unchanged, and false is returned.
func (v *View) SetZoom(z float64) bool {
	if !(z > 0) || math.IsInf(z, 0) {
		return false
	}
	v.zoom = z
	return true
}

// ToDevice maps a document-space point to device space.
func (v View) ToDevice(p Point) Point {
	return v.Matrix().TransformPoint(p)
}

// ToDocument maps a device-space point back to document space.
func (v View) ToDocument(p Point) Point {
	inv, ok := v.Matrix().Invert()
	if !ok {
		return p
	}
	return inv.TransformPoint(p)
}

// Matrix returns the document-to-device transform. It is always invertible
// because the zoom is kept strictly positive and finite.
func (v View) Matrix() Matrix {
	z := v.Zoom()
	return Translate(float64(v.PanX), float64(v.PanY)).Multiply(Scale(z, z))
}

// PanBy moves the view by a device-space offset.
func (v *View) PanBy(dx, dy int) {
	v.PanX += dx
	v.PanY += dy
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], and
// adjusts the pan so that the document point under the device point p stays
// under p (up to integer rounding of the pan).
func (v *View) ZoomAt(p Point, factor float64) {
	if !(factor > 0) {
		return
	}
	anchor := v.ToDocument(p)
	z := min(max(v.Zoom()*factor, MinZoom), MaxZoom)
	v.zoom = z
	v.PanX = int(math.Round(p.X - anchor.X*z))
	v.PanY = int(math.Round(p.Y - anchor.Y*z))
}

// Reset restores the identity view.
func (v *View) Reset() {
	*v = View{}
}
