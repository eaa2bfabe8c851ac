package svg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/svgedit"
)

// Namespace is the SVG namespace written on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// Write serializes doc to w. The canvas size is written as whole numbers
// and coordinates with two decimals. Colors are written as stored; an
// empty color is omitted so that Parse restores the same default.
func Write(w io.Writer, doc *svgedit.Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg width=\"%.0f\" height=\"%.0f\" xmlns=\"%s\">\n", doc.Width, doc.Height, Namespace)
	for _, s := range doc.All() {
		switch s := s.(type) {
		case *svgedit.Circle:
			fmt.Fprintf(bw, "  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\"%s/>\n",
				s.CX, s.CY, s.R, colorAttr("fill", s.Fill))
		case *svgedit.Rect:
			fmt.Fprintf(bw, "  <rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"%s/>\n",
				s.X, s.Y, s.Width, s.Height, colorAttr("fill", s.Fill))
		case *svgedit.Line:
			fmt.Fprintf(bw, "  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\"%s/>\n",
				s.X1, s.Y1, s.X2, s.Y2, colorAttr("stroke", s.Stroke))
		}
	}
	fmt.Fprintf(bw, "</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("svg: write: %w", err)
	}
	return nil
}

func colorAttr(name, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" %s=\"%s\"", name, value)
}

// Save writes doc to the file at path.
func Save(path string, doc *svgedit.Document) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("svg: create file: %w", err)
	}

	if err := Write(f, doc); err != nil {
		_ = f.Close()
		return err
	}

	svgedit.Logger().Info("svg: saved document", "path", path, "shapes", doc.Len())
	return f.Close()
}
