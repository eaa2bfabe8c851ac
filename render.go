package svgedit

import (
	"fmt"
	"math"

	"github.com/gogpu/svgedit/internal/raster"
)

// Target is anything shapes can be drawn into. SetPixel must drop writes
// outside [0, Width) × [0, Height). *Pixmap implements Target; see also
// NewImageTarget.
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGB)
}

// CircleAlgorithm selects the circle fill routine.
type CircleAlgorithm int

const (
	// BoxScan tests every pixel of the bounding square. Used for export.
	BoxScan CircleAlgorithm = iota
	// Midpoint draws horizontal spans from the midpoint circle algorithm.
	// Used for interactive display.
	Midpoint
)

// highlightMargin is the gap, in device pixels, between a selected shape
// and its highlight outline.
const highlightMargin = 2

// maxDeviceCoord bounds device coordinates so that squared distances in the
// integer rasterizer cannot overflow.
const maxDeviceCoord = 1 << 28

// Renderer draws shapes through a View. Device coordinates are computed
// with ToDevice and truncated toward zero; radii and sizes are scaled by
// the zoom and truncated.
type Renderer struct {
	view      View
	circle    CircleAlgorithm
	highlight RGB
}

// NewRenderer creates a renderer. Without options it renders at native
// document resolution with box-scan circles.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{view: o.view, circle: o.circle, highlight: o.highlight}
}

// View returns the renderer's view.
func (r *Renderer) View() View {
	return r.view
}

// Draw rasterizes s into dst.
func (r *Renderer) Draw(dst Target, s Shape) {
	r.draw(rasterTarget{dst}, s, s.Color())
}

// DrawHighlight draws the selection marker for s: an outline
// highlightMargin pixels outside the bounds of a circle or rect, or the
// line itself redrawn in the highlight color.
func (r *Renderer) DrawHighlight(dst Target, s Shape) {
	t := rasterTarget{dst}
	c := toRaster(r.highlight)
	if l, ok := s.(*Line); ok {
		r.line(t, l, c)
		return
	}
	b := s.Bounds()
	x, y := r.device(Pt(b.MinX, b.MinY))
	raster.StrokeRect(t,
		x-highlightMargin, y-highlightMargin,
		r.length(b.Width())+2*highlightMargin,
		r.length(b.Height())+2*highlightMargin,
		c)
}

func (r *Renderer) draw(t raster.Target, s Shape, col RGB) {
	c := toRaster(col)
	switch s := s.(type) {
	case *Circle:
		cx, cy := r.device(Pt(s.CX, s.CY))
		radius := r.length(s.R)
		if r.circle == Midpoint {
			raster.FillCircleMidpoint(t, cx, cy, radius, c)
		} else {
			raster.FillCircle(t, cx, cy, radius, c)
		}
	case *Rect:
		x, y := r.device(Pt(s.X, s.Y))
		raster.FillRect(t, x, y, r.length(s.Width), r.length(s.Height), c)
	case *Line:
		r.line(t, s, c)
	}
}

func (r *Renderer) line(t raster.Target, l *Line, c raster.RGB) {
	x1, y1 := r.device(Pt(l.X1, l.Y1))
	x2, y2 := r.device(Pt(l.X2, l.Y2))
	raster.Line(t, x1, y1, x2, y2, c)
}

func (r *Renderer) device(p Point) (x, y int) {
	d := r.view.ToDevice(p)
	return deviceInt(d.X), deviceInt(d.Y)
}

func (r *Renderer) length(v float64) int {
	return deviceInt(v * r.view.Zoom())
}

// deviceInt truncates v toward zero, clamping it to ±maxDeviceCoord.
// NaN maps to 0.
func deviceInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxDeviceCoord:
		return maxDeviceCoord
	case v < -maxDeviceCoord:
		return -maxDeviceCoord
	}
	return int(v)
}

// Rasterize renders doc into a new white width×height pixmap at native
// document resolution (zoom 1, no pan) with box-scan circles. Any
// interactive view state is ignored. The only failure is a pixmap that
// cannot be allocated.
func Rasterize(doc *Document, width, height int) (*Pixmap, error) {
	pm, err := NewPixmap(width, height)
	if err != nil {
		return nil, fmt.Errorf("svgedit: rasterize: %w", err)
	}
	r := NewRenderer()
	for _, s := range doc.All() {
		r.Draw(pm, s)
	}
	Logger().Debug("svgedit: rasterized document",
		"shapes", doc.Len(), "width", width, "height", height)
	return pm, nil
}

// RasterizeDocument is Rasterize at the document's own pixel size.
func RasterizeDocument(doc *Document) (*Pixmap, error) {
	w, h := doc.PixelSize()
	return Rasterize(doc, w, h)
}

// RenderFrame draws doc into dst through view using midpoint circles, and
// marks the selected shape right after drawing it. dst is not cleared.
// sel may be nil.
func RenderFrame(dst Target, doc *Document, view View, sel *Selection) {
	r := NewRenderer(WithView(view), WithCircleAlgorithm(Midpoint))
	selected, ok := sel.Index()
	for i, s := range doc.All() {
		r.Draw(dst, s)
		if ok && i == selected {
			r.DrawHighlight(dst, s)
		}
	}
}

// rasterTarget adapts Target to raster.Target.
type rasterTarget struct {
	t Target
}

func (a rasterTarget) Width() int  { return a.t.Width() }
func (a rasterTarget) Height() int { return a.t.Height() }

func (a rasterTarget) SetPixel(x, y int, c raster.RGB) {
	a.t.SetPixel(x, y, RGB{R: c.R, G: c.G, B: c.B})
}

func toRaster(c RGB) raster.RGB {
	return raster.RGB{R: c.R, G: c.G, B: c.B}
}
