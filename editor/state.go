package editor

import (
	"fmt"
	"path/filepath"
	"time"
	"unicode"

	"github.com/gogpu/svgedit"
	"github.com/gogpu/svgedit/internal/config"
	"github.com/gogpu/svgedit/svg"
)

// Toolbar button geometry. Button i spans rows
// [buttonTop+i*buttonPitch, buttonTop+i*buttonPitch+buttonHeight).
const (
	buttonTop    = 10
	buttonPitch  = 50
	buttonHeight = 40
	buttonInset  = 10
)

// Key steps.
const (
	panStep    = 10
	zoomFactor = 1.1
)

// saveLayout is the time layout of timestamped save files.
const saveLayout = "output_20060102_150405.svg"

// Action tells the window loop what to do after an event.
type Action int

const (
	// ActionNone continues the loop.
	ActionNone Action = iota
	// ActionQuit ends the loop.
	ActionQuit
)

// Button is a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// MouseEvent is a pointer event in window coordinates. Wheel buttons are
// reported with Action PointerPress.
type MouseEvent struct {
	X, Y   float64
	Button Button
	Action svgedit.PointerAction
}

// Key is a non-printing key. Printing keys are passed as runes.
type Key int

const (
	KeyNone Key = iota
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// tools are the shape kinds offered by the toolbar, in button order.
var tools = [...]svgedit.Kind{svgedit.KindCircle, svgedit.KindRect, svgedit.KindLine}

// State is the editor model: the document, the view and selection, and
// toolbar visibility. It has no window dependency; Run feeds it events.
//
// A State is owned by a single goroutine.
type State struct {
	Doc       *svgedit.Document
	View      svgedit.View
	Selection svgedit.Selection

	ToolbarVisible bool

	cfg     config.Config
	pointer svgedit.Point
	// Last pointer position over the canvas, where toolbar shapes go.
	anchor svgedit.Point
	now    func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithClock sets the clock used to name saved files.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// NewState returns an editor on doc. A nil doc starts an empty document
// of the configured canvas size.
func NewState(doc *svgedit.Document, cfg config.Config, opts ...Option) *State {
	if doc == nil {
		doc = svgedit.NewDocument(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	}
	s := &State{
		Doc:            doc,
		ToolbarVisible: true,
		cfg:            cfg,
		anchor:         svgedit.Pt(float64(cfg.Canvas.Width)/2, float64(cfg.Canvas.Height)/2),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the editor settings.
func (s *State) Config() config.Config {
	return s.cfg
}

// Pointer returns the last pointer position in window coordinates.
func (s *State) Pointer() svgedit.Point {
	return s.pointer
}

// HandleMouse applies a pointer event.
func (s *State) HandleMouse(ev MouseEvent) Action {
	p := svgedit.Pt(ev.X, ev.Y)
	delta := p.Sub(s.pointer)
	s.pointer = p
	if ev.X < float64(s.cfg.Canvas.Width) {
		s.anchor = p
	}

	switch ev.Button {
	case ButtonWheelUp:
		s.View.ZoomAt(p, zoomFactor)
		return ActionNone
	case ButtonWheelDown:
		s.View.ZoomAt(p, 1/zoomFactor)
		return ActionNone
	}

	switch ev.Action {
	case svgedit.PointerPress:
		if ev.Button != ButtonLeft {
			return ActionNone
		}
		if s.inToolbar(p) {
			if i, ok := buttonAt(ev.Y); ok {
				s.AddTool(tools[i])
			}
			return ActionNone
		}
		s.Selection.Press(s.Doc, s.View, p)
	case svgedit.PointerRelease:
		if ev.Button == ButtonLeft {
			s.Selection.Release()
		}
	case svgedit.PointerMove:
		s.Selection.Drag(s.Doc, s.View, delta.X, delta.Y)
	}
	return ActionNone
}

func (s *State) inToolbar(p svgedit.Point) bool {
	return s.ToolbarVisible && p.X >= float64(s.cfg.Canvas.Width)
}

// buttonAt maps a window row to a toolbar button index. The division
// truncates toward zero, so rows above the first button still select it.
func buttonAt(y float64) (int, bool) {
	i := (int(y) - buttonTop) / buttonPitch
	return i, i >= 0 && i < len(tools)
}

// AddTool adds the preset shape of kind k centred on the last canvas
// pointer position and returns it.
func (s *State) AddTool(k svgedit.Kind) svgedit.Shape {
	at := s.View.ToDocument(s.anchor)
	p := s.cfg.Presets
	var shape svgedit.Shape
	switch k {
	case svgedit.KindCircle:
		shape = svgedit.NewCircle(at.X, at.Y, p.Circle.Radius, p.Circle.Fill)
	case svgedit.KindRect:
		shape = svgedit.NewRect(at.X-p.Rect.Width/2, at.Y-p.Rect.Height/2, p.Rect.Width, p.Rect.Height, p.Rect.Fill)
	case svgedit.KindLine:
		e := p.Line.Extent
		shape = svgedit.NewLine(at.X-e, at.Y-e, at.X+e, at.Y+e, p.Line.Stroke)
	default:
		return nil
	}
	s.Doc.Add(shape)
	svgedit.Logger().Info("editor: shape added", "id", shape.ID(), "kind", k)
	return shape
}

// HandleKey applies a key press. k is KeyNone for printing keys, which
// arrive in r.
func (s *State) HandleKey(k Key, r rune) Action {
	switch k {
	case KeyDelete, KeyBackspace:
		s.Selection.Delete(s.Doc)
		return ActionNone
	case KeyEscape:
		return ActionQuit
	case KeyLeft:
		s.View.PanBy(-panStep, 0)
		return ActionNone
	case KeyRight:
		s.View.PanBy(panStep, 0)
		return ActionNone
	case KeyUp:
		s.View.PanBy(0, -panStep)
		return ActionNone
	case KeyDown:
		s.View.PanBy(0, panStep)
		return ActionNone
	}

	switch unicode.ToLower(r) {
	case 's':
		if path, err := s.Save(); err != nil {
			svgedit.Logger().Error("editor: save failed", "path", path, "err", err)
		}
	case 't':
		s.ToolbarVisible = !s.ToolbarVisible
	case '+', '=':
		s.View.ZoomAt(s.pointer, zoomFactor)
	case '-':
		s.View.ZoomAt(s.pointer, 1/zoomFactor)
	case '0':
		s.View.Reset()
	}
	return ActionNone
}

// SavePath returns where Save writes: the configured save path if set,
// otherwise a timestamped file in the save directory.
func (s *State) SavePath() string {
	if s.cfg.SavePath != "" {
		return s.cfg.SavePath
	}
	return filepath.Join(s.cfg.SaveDir, s.now().Format(saveLayout))
}

// Save writes the document to SavePath and returns the path used.
func (s *State) Save() (string, error) {
	path := s.SavePath()
	if err := svg.Save(path, s.Doc); err != nil {
		return path, fmt.Errorf("editor: save: %w", err)
	}
	return path, nil
}
