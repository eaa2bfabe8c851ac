package raster

// FillCircle fills the disc of radius r centred on (cx, cy) by testing every
// pixel of the bounding square: (x, y) is set when (x-cx)² + (y-cy)² <= r².
// A negative radius draws nothing; r = 0 sets the centre pixel.
func FillCircle(t Target, cx, cy, r int, c RGB) {
	if r < 0 || !discVisible(t, cx, cy, r) {
		return
	}
	r2 := r * r
	y0 := max(cy-r, 0)
	y1 := min(cy+r, t.Height()-1)
	x0 := max(cx-r, 0)
	x1 := min(cx+r, t.Width()-1)
	for y := y0; y <= y1; y++ {
		dy := y - cy
		for x := x0; x <= x1; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				t.SetPixel(x, y, c)
			}
		}
	}
}

// FillCircleMidpoint fills the disc of radius r centred on (cx, cy) with the
// midpoint circle algorithm, emitting one horizontal span per
// octant-symmetric row. Interior pixels match FillCircle; the two may pick
// different pixels on the boundary.
func FillCircleMidpoint(t Target, cx, cy, r int, c RGB) {
	if r < 0 || !discVisible(t, cx, cy, r) {
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		HLine(t, cx-x, cx+x, cy+y, c)
		HLine(t, cx-x, cx+x, cy-y, c)
		HLine(t, cx-y, cx+y, cy+x, c)
		HLine(t, cx-y, cx+y, cy-x, c)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// discVisible reports whether the bounding square of the disc overlaps t.
func discVisible(t Target, cx, cy, r int) bool {
	return cx+r >= 0 && cy+r >= 0 && cx-r < t.Width() && cy-r < t.Height()
}
