package svgedit

import "fmt"

// Kind identifies the variant of a Shape.
type Kind int

const (
	// KindCircle is a filled circle.
	KindCircle Kind = iota
	// KindRect is a filled axis-aligned rectangle.
	KindRect
	// KindLine is a stroked line segment.
	KindLine
)

// String returns the SVG element name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is one of *Circle, *Rect or *Line. The set is closed: type switches
// over those three cases are exhaustive.
//
// Shapes are owned by a single Document, which assigns their identifiers.
type Shape interface {
	// ID returns the identifier assigned by the owning Document, or 0 for a
	// shape that has not been added to one.
	ID() int

	// Kind returns the variant tag.
	Kind() Kind

	// Color returns the decoded fill (circle, rect) or stroke (line) color,
	// falling back to the variant default.
	Color() RGB

	// Bounds returns the axis-aligned bounding box in document space.
	Bounds() Box

	// Translate moves the shape by (dx, dy) without resizing it.
	Translate(dx, dy float64)

	setID(id int)
}

// Box is an axis-aligned rectangle given by its corners.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Circle is a circle with center (CX, CY) and radius R.
type Circle struct {
	id     int
	CX, CY float64
	R      float64
	Fill   string // "#RRGGBB" or empty
}

// NewCircle returns a circle that is not yet part of a document.
func NewCircle(cx, cy, r float64, fill string) *Circle {
	return &Circle{CX: cx, CY: cy, R: r, Fill: fill}
}

// ID returns the identifier assigned by the owning document, or 0.
func (c *Circle) ID() int { return c.id }

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// Color returns the parsed fill, or DefaultFill when it is absent or invalid.
func (c *Circle) Color() RGB { return ParseHex(c.Fill, DefaultFill) }

func (c *Circle) setID(id int) { c.id = id }

// String formats the circle for debugging.
func (c *Circle) String() string { return fmt.Sprintf("circle#%d(%g,%g r=%g)", c.id, c.CX, c.CY, c.R) }

// Bounds returns the square enclosing the circle.
func (c *Circle) Bounds() Box {
	return Box{MinX: c.CX - c.R, MinY: c.CY - c.R, MaxX: c.CX + c.R, MaxY: c.CY + c.R}
}

// Translate moves the center by (dx, dy).
func (c *Circle) Translate(dx, dy float64) {
	c.CX += dx
	c.CY += dy
}

// Rect is a rectangle with top-left corner (X, Y).
type Rect struct {
	id            int
	X, Y          float64
	Width, Height float64
	Fill          string // "#RRGGBB" or empty
}

// NewRect returns a rectangle that is not yet part of a document.
func NewRect(x, y, width, height float64, fill string) *Rect {
	return &Rect{X: x, Y: y, Width: width, Height: height, Fill: fill}
}

// ID returns the identifier assigned by the owning document, or 0.
func (r *Rect) ID() int { return r.id }

// Kind returns KindRect.
func (r *Rect) Kind() Kind { return KindRect }

// Color returns the parsed fill, or DefaultFill when it is absent or invalid.
func (r *Rect) Color() RGB { return ParseHex(r.Fill, DefaultFill) }

func (r *Rect) setID(id int) { r.id = id }

// String formats the rectangle for debugging.
func (r *Rect) String() string {
	return fmt.Sprintf("rect#%d(%g,%g %gx%g)", r.id, r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the rectangle itself.
func (r *Rect) Bounds() Box {
	return Box{MinX: r.X, MinY: r.Y, MaxX: r.X + r.Width, MaxY: r.Y + r.Height}
}

// Translate moves the top-left corner by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Line is a segment from (X1, Y1) to (X2, Y2).
type Line struct {
	id     int
	X1, Y1 float64
	X2, Y2 float64
	Stroke string // "#RRGGBB" or empty
}

// NewLine returns a line that is not yet part of a document.
func NewLine(x1, y1, x2, y2 float64, stroke string) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke}
}

// ID returns the identifier assigned by the owning document, or 0.
func (l *Line) ID() int { return l.id }

// Kind returns KindLine.
func (l *Line) Kind() Kind { return KindLine }

// Color returns the parsed stroke, or DefaultStroke when it is absent or invalid.
func (l *Line) Color() RGB { return ParseHex(l.Stroke, DefaultStroke) }

func (l *Line) setID(id int) { l.id = id }

// String formats the line for debugging.
func (l *Line) String() string {
	return fmt.Sprintf("line#%d(%g,%g-%g,%g)", l.id, l.X1, l.Y1, l.X2, l.Y2)
}

// Bounds returns the box spanned by the two endpoints.
func (l *Line) Bounds() Box {
	return Box{
		MinX: min(l.X1, l.X2), MinY: min(l.Y1, l.Y2),
		MaxX: max(l.X1, l.X2), MaxY: max(l.Y1, l.Y2),
	}
}

// Translate moves both endpoints by (dx, dy).
func (l *Line) Translate(dx, dy float64) {
	l.X1 += dx
	l.Y1 += dy
	l.X2 += dx
	l.Y2 += dy
}
