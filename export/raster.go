package export

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/gogpu/svgedit"
)

func init() {
	Register("bmp", func() Encoder { return rasterEncoder(encodeBMP) }, ".bmp")
	Register("jpeg", func() Encoder { return rasterEncoder(encodeJPEG) }, ".jpg", ".jpeg")
	Register("png", func() Encoder { return rasterEncoder(encodePNG) }, ".png")
}

// rasterEncoder rasterizes the document at native resolution and hands the
// image to encode.
func rasterEncoder(encode func(io.Writer, image.Image, Options) error) Encoder {
	return EncoderFunc(func(w io.Writer, doc *svgedit.Document, opts Options) error {
		pm, err := svgedit.RasterizeDocument(doc)
		if err != nil {
			return err
		}
		return encode(w, pm.ToImage(), opts)
	})
}

func encodeBMP(w io.Writer, img image.Image, _ Options) error {
	return bmp.Encode(w, img)
}

func encodePNG(w io.Writer, img image.Image, _ Options) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image, opts Options) error {
	q, ok := NormalizeQuality(opts.Quality)
	if !ok {
		svgedit.Logger().Warn("export: jpeg quality out of range, using default",
			"quality", opts.Quality, "default", DefaultQuality)
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
}
