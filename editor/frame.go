package editor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/svgedit"
)

// Frame colors.
var (
	backgroundColor = color.RGBA{240, 240, 240, 255}
	canvasColor     = color.RGBA{255, 255, 255, 255}
	toolbarColor    = color.RGBA{200, 200, 200, 255}
	borderColor     = color.RGBA{0, 0, 0, 255}
	labelColor      = color.RGBA{0, 0, 0, 255}
)

// buttonColors are the toolbar button fills, in tools order.
var buttonColors = [len(tools)]color.RGBA{
	{100, 200, 100, 255},
	{200, 100, 100, 255},
	{100, 100, 200, 255},
}

// Frame renders the whole window into dst: background, canvas with the
// document through the current view, the selection highlight and, when
// visible, the toolbar. Shapes are clipped to the canvas.
func (s *State) Frame(dst *image.RGBA) {
	fill(dst, dst.Bounds(), backgroundColor)

	canvas := s.CanvasRect().Intersect(dst.Bounds())
	if !canvas.Empty() {
		fill(dst, canvas, canvasColor)
		target := svgedit.NewImageTarget(dst.SubImage(canvas).(*image.RGBA))
		svgedit.RenderFrame(target, s.Doc, s.View, &s.Selection)
	}

	if s.ToolbarVisible {
		s.drawToolbar(dst)
	}
}

// CanvasRect is the canvas area in window coordinates.
func (s *State) CanvasRect() image.Rectangle {
	return image.Rect(0, 0, s.cfg.Canvas.Width, s.cfg.Canvas.Height)
}

// ToolbarRect is the toolbar area in window coordinates.
func (s *State) ToolbarRect() image.Rectangle {
	x := s.cfg.Canvas.Width
	return image.Rect(x, 0, x+s.cfg.ToolbarWidth, s.cfg.Canvas.Height)
}

// ButtonRect is the area of toolbar button i.
func (s *State) ButtonRect(i int) image.Rectangle {
	tb := s.ToolbarRect()
	y := buttonTop + i*buttonPitch
	return image.Rect(tb.Min.X+buttonInset, y, tb.Max.X-buttonInset, y+buttonHeight)
}

func (s *State) drawToolbar(dst *image.RGBA) {
	tb := s.ToolbarRect()
	fill(dst, tb, toolbarColor)
	outline(dst, tb, borderColor)

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, k := range tools {
		r := s.ButtonRect(i)
		fill(dst, r, buttonColors[i])
		outline(dst, r, borderColor)

		label := toolLabel(k)
		width := d.MeasureString(label).Ceil()
		x := r.Min.X + (r.Dx()-width)/2
		y := r.Min.Y + (r.Dy()+ascent)/2
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}
}

func toolLabel(k svgedit.Kind) string {
	switch k {
	case svgedit.KindCircle:
		return "Circle"
	case svgedit.KindRect:
		return "Rectangle"
	case svgedit.KindLine:
		return "Line"
	}
	return k.String()
}

func fill(dst draw.Image, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// outline draws a one pixel border just inside r.
func outline(dst draw.Image, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}
