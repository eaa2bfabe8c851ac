// Package svgedit rasterizes and hit-tests documents made of circles,
// rectangles and lines.
//
// # Overview
//
// A Document holds an ordered sequence of Shapes. Sequence order is z-order
// for drawing and, with first-match-wins, also the selection priority:
// the earliest shape under the pointer is selected even if a later one is
// drawn over it.
//
//	doc := svgedit.NewDocument(200, 100)
//	doc.Add(svgedit.NewCircle(50, 50, 20, "#FF0000"))
//	doc.Add(svgedit.NewLine(0, 0, 199, 99, ""))
//
//	pm, err := svgedit.RasterizeDocument(doc)
//	if err != nil {
//	    // only allocation can fail
//	}
//	img := pm.ToImage()
//
// # Coordinate System
//
// Shapes live in document space. A View maps them to device space:
//
//	device = document*zoom + pan
//
// Export (Rasterize) always uses the identity view. Interactive drawing
// (RenderFrame) and pointer handling (Selection) take the current View.
//
// # Error Handling
//
// Geometry is total: malformed colors fall back to defaults, out-of-range
// pixel writes are dropped, empty rectangles draw nothing and dragging
// without a selection does nothing. Only pixmap allocation returns an error.
//
// # Logging
//
// The package is silent by default; see SetLogger.
package svgedit
