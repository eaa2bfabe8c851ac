// Package editor is the interactive shape editor.
//
// State holds the editing model and is driven by plain MouseEvent and key
// values, so it can be used and tested without a display. Frame renders a
// State into an *image.RGBA. Run connects both to a native window through
// golang.org/x/exp/shiny.
//
// Controls:
//
//	left drag      select and move a shape
//	toolbar        add a circle, rectangle or line at the pointer
//	Delete         remove the selected shape
//	S              save to SVG
//	T              toggle the toolbar
//	+ / - / wheel  zoom about the pointer
//	arrows         pan
//	0              reset the view
//	Esc            quit
package editor
