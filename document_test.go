package svgedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument(0, -3)
	if doc.Width != DefaultWidth || doc.Height != DefaultHeight {
		t.Errorf("size = %vx%v, want %dx%d", doc.Width, doc.Height, DefaultWidth, DefaultHeight)
	}
	if w, h := NewDocument(320.7, 200.2).PixelSize(); w != 320 || h != 200 {
		t.Errorf("PixelSize = %dx%d, want 320x200", w, h)
	}
}

func TestDocument_IDsNeverReused(t *testing.T) {
	doc := NewDocument(100, 100)
	a := doc.Add(NewCircle(1, 1, 1, ""))
	b := doc.Add(NewRect(1, 1, 1, 1, ""))
	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", a.ID(), b.ID())
	}
	if _, ok := doc.Remove(1); !ok {
		t.Fatal("Remove(1) failed")
	}
	c := doc.Add(NewLine(0, 0, 1, 1, ""))
	if c.ID() != 3 {
		t.Errorf("id after delete = %d, want 3", c.ID())
	}

	var ids []int
	for _, s := range doc.All() {
		ids = append(ids, s.ID())
	}
	if diff := cmp.Diff([]int{1, 3}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_IndexAndRemove(t *testing.T) {
	doc := NewDocument(100, 100)
	for i := range 4 {
		doc.Add(NewCircle(float64(i), 0, 1, ""))
	}
	i, ok := doc.Index(3)
	if !ok || i != 2 {
		t.Errorf("Index(3) = %d, %v; want 2, true", i, ok)
	}
	if _, ok := doc.Index(99); ok {
		t.Error("Index(99) found a shape")
	}
	if _, ok := doc.Remove(4); ok {
		t.Error("Remove out of range succeeded")
	}
	s, ok := doc.Remove(0)
	if !ok || s.ID() != 1 || doc.Len() != 3 {
		t.Errorf("Remove(0) = %v, %v; len %d", s, ok, doc.Len())
	}
	if doc.At(-1) != nil || doc.At(3) != nil {
		t.Error("At out of range should return nil")
	}
}

func TestDocument_ShapesIsCopy(t *testing.T) {
	doc := NewDocument(100, 100)
	doc.Add(NewCircle(1, 1, 1, ""))
	shapes := doc.Shapes()
	shapes[0] = nil
	if doc.At(0) == nil {
		t.Error("modifying Shapes() result changed the document")
	}
}

func TestTranslateRoundTrip(t *testing.T) {
	shapes := []Shape{
		NewCircle(10.5, -3.25, 7, "#123456"),
		NewRect(1, 2, 3, 4, ""),
		NewLine(-1, -2, 30.125, 40, "#000000"),
	}
	opts := cmp.AllowUnexported(Circle{}, Rect{}, Line{})
	for _, s := range shapes {
		doc := NewDocument(100, 100)
		doc.Add(s)
		want := doc.Shapes()[0]
		before := cloneShape(want)

		doc.Translate(0, 12.75, -8.5)
		if cmp.Equal(before, doc.At(0), opts) {
			t.Errorf("%v: translate had no effect", s)
		}
		if b := doc.At(0).Bounds(); b.Width() != before.Bounds().Width() || b.Height() != before.Bounds().Height() {
			t.Errorf("%v: translate resized the shape", s)
		}
		doc.Translate(0, -12.75, 8.5)
		if diff := cmp.Diff(before, doc.At(0), opts); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDocument_TranslateOutOfRange(t *testing.T) {
	doc := NewDocument(10, 10)
	if doc.Translate(0, 1, 1) {
		t.Error("Translate on empty document reported success")
	}
}

func cloneShape(s Shape) Shape {
	switch s := s.(type) {
	case *Circle:
		c := *s
		return &c
	case *Rect:
		r := *s
		return &r
	case *Line:
		l := *s
		return &l
	}
	return nil
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindCircle: "circle", KindRect: "rect", KindLine: "line", Kind(9): "Kind(9)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
