package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/svgedit"
)

// pdfLineWidth is the stroke width of lines, in points.
const pdfLineWidth = 1.0

func init() {
	Register("pdf", func() Encoder { return EncoderFunc(encodePDF) }, ".pdf")
}

// encodePDF writes a single page sized to the document, one point per
// document unit. Circles and rects are filled, lines stroked.
func encodePDF(w io.Writer, doc *svgedit.Document, _ Options) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		OrientationStr: "P",
		Size:           gofpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(pdfLineWidth)

	for _, s := range doc.All() {
		c := s.Color()
		switch s := s.(type) {
		case *svgedit.Circle:
			if s.R < 0 {
				continue
			}
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			pdf.Circle(s.CX, s.CY, s.R, "F")
		case *svgedit.Rect:
			if s.Width <= 0 || s.Height <= 0 {
				continue
			}
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			pdf.Rect(s.X, s.Y, s.Width, s.Height, "F")
		case *svgedit.Line:
			pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
			pdf.Line(s.X1, s.Y1, s.X2, s.Y2)
		}
	}
	return pdf.Output(w)
}
