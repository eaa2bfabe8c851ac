package svgedit

// LineHitTolerance is the maximum distance, in document units, at which a
// point still hits a line.
const LineHitTolerance = 5.0

// HitTest reports whether the document-space point p selects s.
//
//   - Circle: p is within the radius (boundary included). A negative
//     radius never hits.
//   - Rect: p lies in [X, X+Width] × [Y, Y+Height], all edges included.
//   - Line: p is closer than LineHitTolerance to the infinite line through
//     the endpoints. The distance is not clamped to the segment, so points
//     beyond either end but near the extension still hit. A zero-length
//     line is treated as a point.
func HitTest(s Shape, p Point) bool {
	switch s := s.(type) {
	case *Circle:
		return s.R >= 0 && p.Sub(Pt(s.CX, s.CY)).LengthSquared() <= s.R*s.R
	case *Rect:
		return p.X >= s.X && p.X <= s.X+s.Width &&
			p.Y >= s.Y && p.Y <= s.Y+s.Height
	case *Line:
		return lineDistance(s, p) < LineHitTolerance
	}
	return false
}

// lineDistance returns the perpendicular distance from p to the line
// through l's endpoints.
func lineDistance(l *Line, p Point) float64 {
	a := Pt(l.X1, l.Y1)
	dir := Pt(l.X2, l.Y2).Sub(a)
	length := dir.Length()
	if length == 0 {
		return p.Sub(a).Length()
	}
	cross := dir.Cross(p.Sub(a))
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}

// HitTest returns the index of the first shape, in z-order, that p hits.
// Earlier shapes win over later ones even when the later shape is drawn on
// top.
func (d *Document) HitTest(p Point) (int, bool) {
	for i, s := range d.shapes {
		if HitTest(s, p) {
			return i, true
		}
	}
	return -1, false
}
