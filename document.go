package svgedit

import (
	"iter"
	"math"
	"slices"
)

// Canvas size used when a document has no usable dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Document is a canvas size plus an ordered sequence of shapes. Sequence
// order is z-order: later shapes are drawn on top.
//
// A Document is not safe for concurrent use.
type Document struct {
	Width, Height float64

	shapes []Shape
	lastID int
}

// NewDocument creates an empty document. Dimensions that are not strictly
// positive and finite fall back to DefaultWidth and DefaultHeight.
func NewDocument(width, height float64) *Document {
	if !(width > 0) || math.IsInf(width, 1) {
		width = DefaultWidth
	}
	if !(height > 0) || math.IsInf(height, 1) {
		height = DefaultHeight
	}
	return &Document{Width: width, Height: height}
}

// Add appends s and assigns it the next identifier. Identifiers start at 1
// and are never reused, even after Remove.
func (d *Document) Add(s Shape) Shape {
	d.lastID++
	s.setID(d.lastID)
	d.shapes = append(d.shapes, s)
	return s
}

// Len returns the number of shapes.
func (d *Document) Len() int {
	return len(d.shapes)
}

// At returns the shape at index i, or nil when i is out of range.
func (d *Document) At(i int) Shape {
	if i < 0 || i >= len(d.shapes) {
		return nil
	}
	return d.shapes[i]
}

// All iterates over the shapes in z-order.
func (d *Document) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, s := range d.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Shapes returns a copy of the shape sequence. The shapes themselves are
// shared with the document.
func (d *Document) Shapes() []Shape {
	return slices.Clone(d.shapes)
}

// Index returns the position of the shape with the given identifier.
func (d *Document) Index(id int) (int, bool) {
	i := slices.IndexFunc(d.shapes, func(s Shape) bool { return s.ID() == id })
	return i, i >= 0
}

// Remove deletes the shape at index i and returns it.
func (d *Document) Remove(i int) (Shape, bool) {
	if i < 0 || i >= len(d.shapes) {
		return nil, false
	}
	s := d.shapes[i]
	d.shapes = slices.Delete(d.shapes, i, i+1)
	return s, true
}

// Translate moves the shape at index i by (dx, dy) in document space.
func (d *Document) Translate(i int, dx, dy float64) bool {
	s := d.At(i)
	if s == nil {
		return false
	}
	s.Translate(dx, dy)
	return true
}

// PixelSize returns the canvas size truncated to whole pixels.
func (d *Document) PixelSize() (width, height int) {
	return int(d.Width), int(d.Height)
}
