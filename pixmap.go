package svgedit

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// MaxPixmapBytes bounds the memory a single Pixmap may use.
const MaxPixmapBytes = 1 << 30

// Pixmap errors.
var (
	// ErrInvalidSize is returned for non-positive pixmap dimensions.
	ErrInvalidSize = errors.New("svgedit: invalid pixmap size")

	// ErrTooLarge is returned when a pixmap would exceed MaxPixmapBytes.
	ErrTooLarge = errors.New("svgedit: pixmap too large")
)

// Pixmap represents a rectangular RGB pixel buffer with the origin at the
// top-left corner, stored row-major with 3 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a white pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxPixmapBytes/3/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
	p.Clear(White)
	return p, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Writes outside the pixmap are
// silently dropped.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel, or White outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return White
	}
	i := (y*p.width + x) * 3
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += 3 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// imageTarget adapts an *image.RGBA to Target so that frames can be drawn
// straight into a window buffer.
type imageTarget struct {
	img *image.RGBA
}

// NewImageTarget returns a Target that draws opaque pixels into img.
func NewImageTarget(img *image.RGBA) Target {
	return imageTarget{img: img}
}

func (t imageTarget) Width() int  { return t.img.Rect.Dx() }
func (t imageTarget) Height() int { return t.img.Rect.Dy() }

func (t imageTarget) SetPixel(x, y int, c RGB) {
	x += t.img.Rect.Min.X
	y += t.img.Rect.Min.Y
	if !(image.Point{X: x, Y: y}).In(t.img.Rect) {
		return
	}
	i := t.img.PixOffset(x, y)
	t.img.Pix[i+0] = c.R
	t.img.Pix[i+1] = c.G
	t.img.Pix[i+2] = c.B
	t.img.Pix[i+3] = 0xff
}
