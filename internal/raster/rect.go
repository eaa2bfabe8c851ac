package raster

// FillRect sets every pixel of the half-open rectangle
// [x, x+w) × [y, y+h). Non-positive w or h draws nothing.
func FillRect(t Target, x, y, w, h int, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, t.Width())
	y1 := min(y+h, t.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.SetPixel(px, py, c)
		}
	}
}

// StrokeRect draws the one pixel wide outline of the rectangle
// [x, x+w) × [y, y+h).
func StrokeRect(t Target, x, y, w, h int, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	right := x + w - 1
	bottom := y + h - 1
	HLine(t, x, right, y, c)
	HLine(t, x, right, bottom, c)
	VLine(t, x, y, bottom, c)
	VLine(t, right, y, bottom, c)
}
