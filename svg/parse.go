package svg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/svgedit"
)

// MaxLineLength is the longest input line Parse accepts.
const MaxLineLength = 1 << 20

// ErrLineTooLong is returned when an input line exceeds MaxLineLength.
var ErrLineTooLong = errors.New("svg: line too long")

// Parse reads a document from r.
//
// The reader is line oriented. A line containing "<svg" may set the
// canvas size; each line containing "<circle", "<rect" or "<line" adds
// one shape in input order. Everything else is ignored. Missing or
// unparsable numeric attributes read as 0 and missing colors stay empty,
// which selects the shape's default color. A document without a usable
// <svg> size gets svgedit.DefaultWidth × svgedit.DefaultHeight.
func Parse(r io.Reader) (*svgedit.Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	width, height := float64(svgedit.DefaultWidth), float64(svgedit.DefaultHeight)
	var shapes []svgedit.Shape
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.Contains(line, "<svg") {
			if v, ok := attr(line, "width"); ok {
				width = number(v, lineNo)
			}
			if v, ok := attr(line, "height"); ok {
				height = number(v, lineNo)
			}
		}
		if strings.Contains(line, "<circle") {
			shapes = append(shapes, svgedit.NewCircle(
				numAttr(line, "cx", lineNo),
				numAttr(line, "cy", lineNo),
				numAttr(line, "r", lineNo),
				strAttr(line, "fill"),
			))
		}
		if strings.Contains(line, "<rect") {
			shapes = append(shapes, svgedit.NewRect(
				numAttr(line, "x", lineNo),
				numAttr(line, "y", lineNo),
				numAttr(line, "width", lineNo),
				numAttr(line, "height", lineNo),
				strAttr(line, "fill"),
			))
		}
		if strings.Contains(line, "<line") {
			shapes = append(shapes, svgedit.NewLine(
				numAttr(line, "x1", lineNo),
				numAttr(line, "y1", lineNo),
				numAttr(line, "x2", lineNo),
				numAttr(line, "y2", lineNo),
				strAttr(line, "stroke"),
			))
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, lineNo+1, MaxLineLength)
		}
		return nil, fmt.Errorf("svg: read: %w", err)
	}

	doc := svgedit.NewDocument(width, height)
	for _, s := range shapes {
		doc.Add(s)
	}
	svgedit.Logger().Debug("svg: parsed document",
		"width", doc.Width, "height", doc.Height, "shapes", doc.Len())
	return doc, nil
}

// Load parses the file at path.
func Load(path string) (*svgedit.Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("svg: open file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// attr finds name="value" in line and returns value. The name must start
// the line or follow whitespace, so "x" does not match inside "cx" and
// "width" does not match inside "stroke-width".
func attr(line, name string) (string, bool) {
	key := name + `="`
	for off := 0; ; {
		i := strings.Index(line[off:], key)
		if i < 0 {
			return "", false
		}
		i += off
		if i == 0 || isSpace(line[i-1]) {
			start := i + len(key)
			end := strings.IndexByte(line[start:], '"')
			if end < 0 {
				return "", false
			}
			return line[start : start+end], true
		}
		off = i + 1
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func numAttr(line, name string, lineNo int) float64 {
	v, ok := attr(line, name)
	if !ok {
		return 0
	}
	return number(v, lineNo)
}

func strAttr(line, name string) string {
	v, _ := attr(line, name)
	return v
}

// number parses v, reading malformed input as 0.
func number(v string, lineNo int) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		svgedit.Logger().Debug("svg: malformed number", "line", lineNo, "value", v)
		return 0
	}
	return f
}
