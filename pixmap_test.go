package svgedit

import (
	"errors"
	"image"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image and Target.
var (
	_ image.Image = (*Pixmap)(nil)
	_ Target      = (*Pixmap)(nil)
)

func TestNewPixmap_White(t *testing.T) {
	pm, err := NewPixmap(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(pm.Data()) != 4*3*3 {
		t.Fatalf("len(Data()) = %d, want 36", len(pm.Data()))
	}
	for i, v := range pm.Data() {
		if v != 255 {
			t.Fatalf("byte %d = %d, want 255", i, v)
		}
	}
}

func TestNewPixmap_Errors(t *testing.T) {
	tests := []struct {
		w, h int
		want error
	}{
		{0, 10, ErrInvalidSize},
		{10, -1, ErrInvalidSize},
		{1 << 20, 1 << 20, ErrTooLarge},
	}
	for _, tt := range tests {
		_, err := NewPixmap(tt.w, tt.h)
		if !errors.Is(err, tt.want) {
			t.Errorf("NewPixmap(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.want)
		}
	}
}

func TestPixmap_SetPixel(t *testing.T) {
	pm, _ := NewPixmap(10, 10)
	pm.SetPixel(3, 7, RGB{R: 1, G: 2, B: 3})

	i := (7*10 + 3) * 3
	d := pm.Data()
	if d[i] != 1 || d[i+1] != 2 || d[i+2] != 3 {
		t.Errorf("raw data = (%d, %d, %d), want (1, 2, 3)", d[i], d[i+1], d[i+2])
	}
	if got := pm.GetPixel(3, 7); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("GetPixel = %+v", got)
	}
}

// TestPixmap_SetPixel_OutOfBounds verifies out-of-bounds writes are dropped.
func TestPixmap_SetPixel_OutOfBounds(t *testing.T) {
	pm, _ := NewPixmap(10, 10)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	} {
		pm.SetPixel(c.x, c.y, Black)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified byte %d", i)
		}
	}
	if got := pm.GetPixel(-1, 0); got != White {
		t.Errorf("GetPixel outside = %+v, want white", got)
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm, _ := NewPixmap(2, 2)
	pm.SetPixel(1, 0, Red)
	img := pm.ToImage()
	if got := img.RGBAAt(1, 0); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("RGBAAt(1,0) = %+v", got)
	}
	if got := img.RGBAAt(0, 1); got.R != 255 || got.G != 255 || got.B != 255 || got.A != 255 {
		t.Errorf("RGBAAt(0,1) = %+v, want opaque white", got)
	}
}

func TestImageTarget(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 14, 14))
	tgt := NewImageTarget(img)
	if tgt.Width() != 4 || tgt.Height() != 4 {
		t.Fatalf("size = %dx%d", tgt.Width(), tgt.Height())
	}
	tgt.SetPixel(0, 0, Blue)
	tgt.SetPixel(4, 0, Red) // dropped
	if got := img.RGBAAt(10, 10); got.B != 255 || got.A != 255 {
		t.Errorf("origin pixel = %+v", got)
	}
	if got := img.RGBAAt(13, 10); got.R != 0 {
		t.Errorf("out-of-bounds write landed: %+v", got)
	}
}
