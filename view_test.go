package svgedit

import (
	"math"
	"testing"
)

func TestView_ZeroValue(t *testing.T) {
	var v View
	if v.Zoom() != 1 {
		t.Errorf("zero View zoom = %v, want 1", v.Zoom())
	}
	if got := v.ToDevice(Pt(3, 4)); got != Pt(3, 4) {
		t.Errorf("ToDevice = %v", got)
	}
	if v.Matrix() != Identity() {
		t.Errorf("Matrix() = %v, want identity", v.Matrix())
	}
}

func TestView_Transform(t *testing.T) {
	v := NewView(10, -20, 2)
	doc := Pt(5, 7)
	dev := v.ToDevice(doc)
	if dev != Pt(20, -6) {
		t.Errorf("ToDevice(%v) = %v, want (20,-6)", doc, dev)
	}
	if got := v.ToDocument(dev); !pointsClose(got, doc) {
		t.Errorf("ToDocument(ToDevice(p)) = %v, want %v", got, doc)
	}
	if got := v.Matrix().TransformPoint(doc); !pointsClose(got, dev) {
		t.Errorf("Matrix().TransformPoint = %v, want %v", got, dev)
	}
}

func TestView_SetZoomRejects(t *testing.T) {
	v := NewView(0, 0, 1.5)
	for _, z := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if v.SetZoom(z) {
			t.Errorf("SetZoom(%v) accepted", z)
		}
		if v.Zoom() != 1.5 {
			t.Errorf("after SetZoom(%v) zoom = %v, want 1.5", z, v.Zoom())
		}
	}
	if NewView(0, 0, 0).Zoom() != 1 {
		t.Error("NewView with zero zoom should fall back to 1")
	}
}

func TestView_ZoomAt(t *testing.T) {
	v := NewView(30, 40, 1)
	anchor := Pt(130, 240)
	before := v.ToDocument(anchor)

	v.ZoomAt(anchor, 2)
	if v.Zoom() != 2 {
		t.Fatalf("zoom = %v, want 2", v.Zoom())
	}
	if got := v.ToDocument(anchor); !pointsClose(got, before) {
		t.Errorf("anchor moved: %v -> %v", before, got)
	}

	v.ZoomAt(anchor, 1e9)
	if v.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want clamp to %v", v.Zoom(), MaxZoom)
	}
	v.ZoomAt(anchor, 0)
	if v.Zoom() != MaxZoom {
		t.Errorf("ZoomAt(0) changed zoom to %v", v.Zoom())
	}
}

func TestView_PanReset(t *testing.T) {
	v := NewView(1, 2, 3)
	v.PanBy(-5, 10)
	if v.PanX != -4 || v.PanY != 12 {
		t.Errorf("pan = (%d,%d), want (-4,12)", v.PanX, v.PanY)
	}
	v.Reset()
	if v != (View{}) {
		t.Errorf("Reset() = %+v", v)
	}
}

func TestView_MatrixMapping(t *testing.T) {
	v := NewView(-7, 13, math.Pow(1.1, 5))
	z := v.Zoom()
	for _, doc := range []Point{Pt(0, 0), Pt(5, 7), Pt(-120.5, 33.25), Pt(640, 480)} {
		dev := v.ToDevice(doc)
		want := Pt(doc.X*z-7, doc.Y*z+13)
		if !pointsClose(dev, want) {
			t.Errorf("ToDevice(%v) = %v, want %v", doc, dev, want)
		}
		if got := v.ToDocument(dev); math.Abs(got.X-doc.X) > 1e-9 || math.Abs(got.Y-doc.Y) > 1e-9 {
			t.Errorf("ToDocument(ToDevice(%v)) = %v", doc, got)
		}
	}
}
