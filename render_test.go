package svgedit

import (
	"errors"
	"image"
	"testing"
)

func countColor(pm *Pixmap, c RGB) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRasterize_Background(t *testing.T) {
	pm, err := RasterizeDocument(NewDocument(30, 20))
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 30 || pm.Height() != 20 {
		t.Fatalf("size = %dx%d", pm.Width(), pm.Height())
	}
	if n := countColor(pm, White); n != 600 {
		t.Errorf("%d white pixels, want 600", n)
	}
}

func TestRasterize_Shapes(t *testing.T) {
	doc := NewDocument(100, 100)
	doc.Add(NewRect(10, 10, 20, 5, "#00FF00"))
	doc.Add(NewLine(0, 99, 10, 99, ""))
	doc.Add(NewCircle(70, 70, 3, "#0000FF"))

	pm, err := RasterizeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n := countColor(pm, Green); n != 100 {
		t.Errorf("rect pixels = %d, want 100", n)
	}
	if n := countColor(pm, Black); n != 11 {
		t.Errorf("line pixels = %d, want 11", n)
	}
	// dx²+dy² <= 9 has 29 lattice points.
	if n := countColor(pm, Blue); n != 29 {
		t.Errorf("circle pixels = %d, want 29", n)
	}
	if pm.GetPixel(30, 10) != White || pm.GetPixel(29, 14) != Green {
		t.Error("rect fill is not half-open")
	}
}

func TestRasterize_Truncates(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Add(NewRect(1.9, 1.9, 2.9, 2.9, "#FF0000"))
	pm, _ := RasterizeDocument(doc)
	// x: int(1.9)=1, width int(2.9)=2 -> columns 1,2
	if n := countColor(pm, Red); n != 4 {
		t.Errorf("red pixels = %d, want 4", n)
	}
}

func TestRasterize_LaterShapesOnTop(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Add(NewRect(0, 0, 10, 10, "#FF0000"))
	doc.Add(NewRect(0, 0, 5, 10, "#0000FF"))
	pm, _ := RasterizeDocument(doc)
	if pm.GetPixel(2, 2) != Blue || pm.GetPixel(7, 2) != Red {
		t.Error("z-order not respected")
	}
}

func TestRasterize_AllocationFailure(t *testing.T) {
	_, err := Rasterize(NewDocument(1, 1), 0, 10)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error = %v, want ErrInvalidSize", err)
	}
}

func TestRasterize_IgnoresHugeGeometry(t *testing.T) {
	doc := NewDocument(8, 8)
	doc.Add(NewCircle(4, 4, 1e300, "#FF0000"))
	doc.Add(NewLine(-1e300, 0, -1e299, 5, ""))
	pm, err := RasterizeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n := countColor(pm, Red); n != 64 {
		t.Errorf("red pixels = %d, want 64", n)
	}
}

func TestRenderer_View(t *testing.T) {
	doc := NewDocument(100, 100)
	doc.Add(NewRect(1, 1, 2, 2, "#FF0000"))
	pm, _ := NewPixmap(40, 40)
	r := NewRenderer(WithView(NewView(10, 5, 3)))
	r.Draw(pm, doc.At(0))

	// Device rect: x = 1*3+10 = 13, y = 1*3+5 = 8, 6x6.
	if n := countColor(pm, Red); n != 36 {
		t.Errorf("red pixels = %d, want 36", n)
	}
	if pm.GetPixel(13, 8) != Red || pm.GetPixel(18, 13) != Red || pm.GetPixel(19, 13) != White {
		t.Error("zoomed rect misplaced")
	}
}

func TestRenderFrame_Highlight(t *testing.T) {
	doc := NewDocument(100, 100)
	doc.Add(NewRect(20, 20, 10, 10, "#00FF00"))
	var sel Selection
	sel.Select(0)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	RenderFrame(NewImageTarget(img), doc, View{}, &sel)

	// Outline spans [18, 31] in both axes.
	for _, p := range []image.Point{{18, 18}, {31, 18}, {18, 31}, {31, 31}, {25, 18}} {
		if c := img.RGBAAt(p.X, p.Y); c.R != 255 || c.G != 0 {
			t.Errorf("highlight missing at %v: %+v", p, c)
		}
	}
	if c := img.RGBAAt(25, 25); c.G != 255 {
		t.Errorf("fill overwritten by highlight: %+v", c)
	}
}

func TestRenderFrame_LineHighlightAndNilSelection(t *testing.T) {
	doc := NewDocument(50, 50)
	doc.Add(NewLine(0, 10, 20, 10, "#0000FF"))

	pm, _ := NewPixmap(50, 50)
	RenderFrame(pm, doc, View{}, nil)
	if n := countColor(pm, Blue); n != 21 {
		t.Errorf("line pixels = %d, want 21", n)
	}

	var sel Selection
	sel.Select(0)
	RenderFrame(pm, doc, View{}, &sel)
	if n := countColor(pm, Red); n != 21 {
		t.Errorf("highlighted line pixels = %d, want 21", n)
	}
}

func TestRenderFrame_MidpointCircle(t *testing.T) {
	doc := NewDocument(100, 100)
	doc.Add(NewCircle(20, 20, 10, "#0000FF"))
	pm, _ := NewPixmap(100, 100)
	RenderFrame(pm, doc, NewView(30, 30, 2), nil)

	// Centre moves to (70,70) and the radius doubles.
	if pm.GetPixel(70, 70) != Blue || pm.GetPixel(70, 52) != Blue {
		t.Error("zoomed circle interior missing")
	}
	if pm.GetPixel(70, 48) != White || pm.GetPixel(20, 20) != White {
		t.Error("zoomed circle drawn outside its radius")
	}
}
