package editor

import (
	"image"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/gogpu/svgedit"
	"github.com/gogpu/svgedit/internal/config"
)

// Title is the editor window title.
const Title = "svgedit"

// tickEvent asks the loop to repaint if the state changed.
type tickEvent struct{}

// Run opens the editor window on doc and blocks until the window is closed
// or Escape is pressed. A nil doc starts an empty canvas. Run must be
// called from the main goroutine.
func Run(doc *svgedit.Document, cfg config.Config, opts ...Option) error {
	st := NewState(doc, cfg, opts...)
	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = run(s, st)
	})
	return runErr
}

func run(s screen.Screen, st *State) error {
	cfg := st.Config()
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  Title,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	done := make(chan struct{})
	defer close(done)
	rate := cfg.FrameRate
	if rate <= 0 {
		rate = config.Default().FrameRate
	}
	go tick(w, time.Second/time.Duration(rate), done)

	svgedit.Logger().Info("editor: window opened",
		"width", cfg.Window.Width, "height", cfg.Window.Height, "shapes", st.Doc.Len())

	dirty := true
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			if buf != nil {
				buf.Release()
			}
			sz := e.Size()
			if sz.X <= 0 || sz.Y <= 0 {
				buf = nil
				continue
			}
			if buf, err = s.NewBuffer(sz); err != nil {
				return err
			}
			dirty = true

		case paint.Event:
			dirty = true
			publish(w, buf, st, &dirty)

		case tickEvent:
			publish(w, buf, st, &dirty)

		case mouse.Event:
			if ev, ok := translateMouse(e); ok {
				st.HandleMouse(ev)
				dirty = true
			}

		case key.Event:
			if e.Direction == key.DirRelease {
				continue
			}
			k, r := translateKey(e)
			if st.HandleKey(k, r) == ActionQuit {
				return nil
			}
			dirty = true

		case error:
			return e
		}
	}
}

func tick(w screen.Window, every time.Duration, done <-chan struct{}) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			w.Send(tickEvent{})
		}
	}
}

func publish(w screen.Window, buf screen.Buffer, st *State, dirty *bool) {
	if buf == nil || !*dirty {
		return
	}
	st.Frame(buf.RGBA())
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
	*dirty = false
}

func translateMouse(e mouse.Event) (MouseEvent, bool) {
	ev := MouseEvent{X: float64(e.X), Y: float64(e.Y)}
	switch e.Button {
	case mouse.ButtonLeft:
		ev.Button = ButtonLeft
	case mouse.ButtonRight:
		ev.Button = ButtonRight
	case mouse.ButtonWheelUp:
		ev.Button = ButtonWheelUp
	case mouse.ButtonWheelDown:
		ev.Button = ButtonWheelDown
	}
	switch e.Direction {
	case mouse.DirPress, mouse.DirStep:
		ev.Action = svgedit.PointerPress
	case mouse.DirRelease:
		if ev.Button == ButtonWheelUp || ev.Button == ButtonWheelDown {
			return ev, false
		}
		ev.Action = svgedit.PointerRelease
	default:
		ev.Action = svgedit.PointerMove
	}
	return ev, true
}

func translateKey(e key.Event) (Key, rune) {
	switch e.Code {
	case key.CodeDeleteForward:
		return KeyDelete, 0
	case key.CodeDeleteBackspace:
		return KeyBackspace, 0
	case key.CodeEscape:
		return KeyEscape, 0
	case key.CodeLeftArrow:
		return KeyLeft, 0
	case key.CodeRightArrow:
		return KeyRight, 0
	case key.CodeUpArrow:
		return KeyUp, 0
	case key.CodeDownArrow:
		return KeyDown, 0
	}
	return KeyNone, e.Rune
}
