package svgedit

import "fmt"

// SelectionState is the state of the selection/drag controller.
type SelectionState int

const (
	// Idle means no shape is selected.
	Idle SelectionState = iota
	// Selected means a shape is selected and the pointer is released.
	Selected
	// Dragging means a shape is selected and follows pointer motion.
	Dragging
)

func (s SelectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("SelectionState(%d)", int(s))
	}
}

// Selection tracks the selected shape and whether it is being dragged.
// The zero value is Idle.
//
// Transitions:
//
//	Idle     --press on a shape-->  Dragging
//	Selected --press on a shape-->  Dragging (possibly another shape)
//	Selected --press on nothing-->  Idle
//	Dragging --release-->           Selected
//	Selected/Dragging --delete-->   Idle
type Selection struct {
	index    int
	selected bool
	dragging bool
}

// State returns the current state.
func (s *Selection) State() SelectionState {
	switch {
	case s == nil || !s.selected:
		return Idle
	case s.dragging:
		return Dragging
	default:
		return Selected
	}
}

// Index returns the document index of the selected shape. It is safe to
// call on a nil Selection.
func (s *Selection) Index() (int, bool) {
	if s == nil || !s.selected {
		return -1, false
	}
	return s.index, true
}

// Select selects the shape at index i without starting a drag.
func (s *Selection) Select(i int) {
	*s = Selection{index: i, selected: true}
}

// Clear returns to Idle.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Press handles a pointer press at device point p. The first shape in
// z-order that contains the inverse-transformed point becomes selected and
// dragging starts at once; a miss clears the selection.
func (s *Selection) Press(doc *Document, view View, p Point) SelectionState {
	i, ok := doc.HitTest(view.ToDocument(p))
	if !ok {
		s.Clear()
		return Idle
	}
	*s = Selection{index: i, selected: true, dragging: true}
	Logger().Debug("svgedit: shape selected", "index", i, "id", doc.At(i).ID())
	return Dragging
}

// Release ends a drag, keeping the shape selected.
func (s *Selection) Release() SelectionState {
	s.dragging = false
	return s.State()
}

// Drag applies a device-space pointer delta to the selected shape while
// dragging. The delta is divided by the zoom to get document units. It
// reports whether a shape moved; without a drag in progress it is a no-op.
func (s *Selection) Drag(doc *Document, view View, dx, dy float64) bool {
	if s.State() != Dragging {
		return false
	}
	z := view.Zoom()
	if !doc.Translate(s.index, dx/z, dy/z) {
		s.Clear()
		return false
	}
	return true
}

// Delete removes the selected shape from doc and returns it.
func (s *Selection) Delete(doc *Document) (Shape, bool) {
	i, ok := s.Index()
	if !ok {
		return nil, false
	}
	s.Clear()
	shape, ok := doc.Remove(i)
	if ok {
		Logger().Info("svgedit: shape deleted", "id", shape.ID(), "kind", shape.Kind())
	}
	return shape, ok
}

// PointerAction is the kind of a PointerEvent.
type PointerAction int

const (
	// PointerPress is a primary button press.
	PointerPress PointerAction = iota
	// PointerRelease is a primary button release.
	PointerRelease
	// PointerMove is pointer motion.
	PointerMove
)

// PointerEvent is a pointer event in device space. DX and DY carry the
// motion since the previous event and are only used for PointerMove.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
	DX, DY float64
}

// HandlePointer feeds ev to the controller and returns the new state.
func (s *Selection) HandlePointer(doc *Document, view View, ev PointerEvent) SelectionState {
	switch ev.Action {
	case PointerPress:
		return s.Press(doc, view, Pt(ev.X, ev.Y))
	case PointerRelease:
		return s.Release()
	case PointerMove:
		s.Drag(doc, view, ev.DX, ev.DY)
	}
	return s.State()
}
