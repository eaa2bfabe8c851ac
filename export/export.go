// Package export writes documents to image and print formats.
//
// Raster formats (bmp, jpeg, png) rasterize the document at its own pixel
// size with svgedit.RasterizeDocument, so the result never depends on any
// editor view. The pdf format draws the shapes as vectors on a page the
// size of the document.
//
// Formats live in a registry keyed by name and file extension:
//
//	err := export.ExportFile("out.jpg", doc, export.Options{Quality: 75})
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/svgedit"
)

// JPEG quality bounds.
const (
	MinQuality     = 1
	MaxQuality     = 100
	DefaultQuality = 90
)

// ErrUnknownFormat is returned for format names and file extensions that
// have no registered encoder.
var ErrUnknownFormat = errors.New("export: unknown format")

// Options configure an export.
type Options struct {
	// Format is a registered format name. When empty, ExportFile picks
	// the format from the file extension.
	Format string

	// Quality is the JPEG quality in [MinQuality, MaxQuality]. Zero
	// selects DefaultQuality. Other formats ignore it.
	Quality int
}

// Encoder writes a document in one format.
type Encoder interface {
	Encode(w io.Writer, doc *svgedit.Document, opts Options) error
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, doc *svgedit.Document, opts Options) error

// Encode calls f.
func (f EncoderFunc) Encode(w io.Writer, doc *svgedit.Document, opts Options) error {
	return f(w, doc, opts)
}

// NormalizeQuality maps q to a usable JPEG quality. Zero becomes
// DefaultQuality; any other value outside [MinQuality, MaxQuality] is
// replaced by DefaultQuality and reported with ok == false.
func NormalizeQuality(q int) (quality int, ok bool) {
	switch {
	case q == 0:
		return DefaultQuality, true
	case q < MinQuality || q > MaxQuality:
		return DefaultQuality, false
	}
	return q, true
}

// Export encodes doc to w in the named format.
func Export(w io.Writer, format string, doc *svgedit.Document, opts Options) error {
	enc, err := Lookup(format)
	if err != nil {
		return err
	}
	opts.Format = format
	if err := enc.Encode(w, doc, opts); err != nil {
		return fmt.Errorf("export: %s: %w", format, err)
	}
	return nil
}

// ExportFile encodes doc into the file at path. opts.Format overrides the
// format implied by the extension.
func ExportFile(path string, doc *svgedit.Document, opts Options) error {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = ForPath(path); err != nil {
			return err
		}
	}
	enc, err := Lookup(format)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	opts.Format = format
	if err := enc.Encode(f, doc, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close file: %w", err)
	}
	svgedit.Logger().Info("export: wrote file", "path", path, "format", format, "shapes", doc.Len())
	return nil
}
