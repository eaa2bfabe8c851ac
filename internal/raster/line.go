package raster

// Line draws a one pixel wide segment from (x0, y0) to (x1, y1) with
// Bresenham's algorithm. Both endpoints are plotted and consecutive pixels
// are 8-connected.
//
// Only the steps whose major-axis coordinate falls inside t are visited, so
// the cost is bounded by the target size rather than the segment length.
// The minor coordinate at step k is the one the incremental error term
// reaches after k steps.
func Line(t Target, x0, y0, x1, y1 int, c RGB) {
	if lineOutside(t, x0, y0, x1, y1) {
		return
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	if dx >= dy {
		lo, hi := stepRange(x0, sx, dx, t.Width())
		for k := lo; k <= hi; k++ {
			t.SetPixel(x0+sx*k, y0+sy*minorStep(k, dy, dx), c)
		}
		return
	}
	lo, hi := stepRange(y0, sy, dy, t.Height())
	for k := lo; k <= hi; k++ {
		t.SetPixel(x0+sx*minorStep(k, dx, dy), y0+sy*k, c)
	}
}

// stepRange returns the steps k in [0, n] for which start+dir*k lies in
// [0, size). The range is empty (lo > hi) when no step does.
func stepRange(start, dir, n, size int) (lo, hi int) {
	if dir > 0 {
		lo, hi = -start, size-1-start
	} else {
		lo, hi = start-(size-1), start
	}
	return max(lo, 0), min(hi, n)
}

// minorStep returns how far the minor axis has advanced after k major
// steps of a segment with the given minor and major extents. It is the
// count of n >= 1 with (2n-1)*major < 2k*minor, which is where the error
// term dx-dy crosses zero. major must be positive unless k and minor are 0.
func minorStep(k, minor, major int) int {
	if major == 0 {
		return 0
	}
	return int((2*int64(k)*int64(minor) + int64(major) - 1) / (2 * int64(major)))
}

// lineOutside reports whether both endpoints lie beyond the same edge of t,
// in which case no pixel of the segment can be visible.
func lineOutside(t Target, x0, y0, x1, y1 int) bool {
	w, h := t.Width(), t.Height()
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= w && x1 >= w) || (y0 >= h && y1 >= h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
