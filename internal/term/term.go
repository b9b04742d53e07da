// Package term drives a Controller from a character terminal using tcell.
// Each cell takes two columns so the plane keeps a square aspect; the last
// row carries the status line.
package term

import (
	"context"
	"errors"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/viewport"

	"github.com/gdamore/tcell/v2"
)

// FrameInterval is the redraw period of Run.
const FrameInterval = 16 * time.Millisecond

var (
	styleAlive    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBoundary = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Frontend renders a controller's viewport onto a tcell screen and feeds
// key and mouse events back to it.
type Frontend struct {
	screen tcell.Screen
	ctl    *app.Controller

	width, height int
	buttons       tcell.ButtonMask
	fps           float64
}

// New attaches ctl to an initialised screen and sizes the viewport to it.
func New(screen tcell.Screen, ctl *app.Controller) *Frontend {
	f := &Frontend{screen: screen, ctl: ctl}
	f.Layout()
	return f
}

// ViewSize converts a terminal size to the viewport area in pixels, where a
// pixel is two columns wide and one row tall.
func ViewSize(cols, rows int) (int, int) {
	return max(cols/2, 1), max(rows-1, 1)
}

// Layout resizes the viewport to the current screen size.
func (f *Frontend) Layout() {
	w, h := f.screen.Size()
	if w == f.width && h == f.height {
		return
	}
	f.width, f.height = w, h
	f.ctl.Resize(ViewSize(w, h))
}

// Draw paints the visible cells and the status line.
func (f *Frontend) Draw() {
	view := f.ctl.View()
	frame := view.Frame()
	cs := view.CellSize()
	rows := f.height - 1
	for row := 0; row < rows; row++ {
		for col := 0; col < f.width; col++ {
			ch, style := ' ', tcell.StyleDefault
			switch frame.At(col/2/cs, row/cs) {
			case viewport.CellAlive:
				ch, style = '█', styleAlive
			case viewport.CellBoundary:
				ch, style = '·', styleBoundary
			}
			f.screen.SetContent(col, row, ch, nil, style)
		}
	}
	f.drawStatus(f.ctl.Status(f.fps).Line())
	f.screen.Show()
	view.Present()
}

func (f *Frontend) drawStatus(line string) {
	if f.height <= 0 {
		return
	}
	runes := []rune(line)
	row := f.height - 1
	for col := 0; col < f.width; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		f.screen.SetContent(col, row, ch, nil, styleStatus)
	}
}

// Handle applies one event. It returns app.ErrQuit when the user asked to
// leave; rule errors are left to the status line.
func (f *Frontend) Handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := CommandForKey(ev)
		if !ok {
			return nil
		}
		if cmd.Kind == app.CmdReseed && ev.Key() == tcell.KeyRune && ev.Rune() == 's' {
			cmd.Seed = time.Now().UnixNano()
		}
		if err := f.ctl.Apply(cmd); errors.Is(err, app.ErrQuit) {
			return err
		}
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
		f.Layout()
	}
	return nil
}

// Only the press edge toggles, so dragging does not flicker a cell.
func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := f.buttons&tcell.Button1 != 0
	f.buttons = ev.Buttons()
	if !pressed || wasPressed {
		return
	}
	col, row := ev.Position()
	if row >= f.height-1 {
		return
	}
	_ = f.ctl.Apply(app.Toggle(col/2, row))
}

// CommandForKey maps a key press to a controller command.
func CommandForKey(ev *tcell.EventKey) (app.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.Simple(app.CmdQuit), true
	case tcell.KeyEnter:
		return app.Simple(app.CmdResume), true
	case tcell.KeyLeft:
		return app.Pan(-4, 0), true
	case tcell.KeyRight:
		return app.Pan(4, 0), true
	case tcell.KeyUp:
		return app.Pan(0, -4), true
	case tcell.KeyDown:
		return app.Pan(0, 4), true
	case tcell.KeyRune:
	default:
		return app.Command{}, false
	}
	switch ev.Rune() {
	case ' ':
		return app.Simple(app.CmdTogglePause), true
	case 'n':
		return app.Simple(app.CmdStep), true
	case 'r', 's':
		return app.Reseed(0), true
	case 'c':
		return app.Simple(app.CmdClear), true
	case 'b':
		return app.Simple(app.CmdToggleBoundary), true
	case '[':
		return app.CycleRule(-1), true
	case ']':
		return app.CycleRule(1), true
	case '+', '=':
		return app.ResizeCell(1), true
	case '-':
		return app.ResizeCell(-1), true
	case 'h':
		return app.Pan(-1, 0), true
	case 'l':
		return app.Pan(1, 0), true
	case 'k':
		return app.Pan(0, -1), true
	case 'j':
		return app.Pan(0, 1), true
	case 'q':
		return app.Simple(app.CmdQuit), true
	}
	return app.Command{}, false
}

// Run pumps screen events and advances the controller until the user quits
// or ctx is cancelled. The caller owns the screen and must Fini it.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frames := 0
	since := time.Now()
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := f.Handle(ev); err != nil {
				if errors.Is(err, app.ErrQuit) {
					return nil
				}
				return err
			}
		case now := <-ticker.C:
			f.ctl.Advance()
			f.Draw()
			frames++
			if elapsed := now.Sub(since); elapsed >= time.Second {
				f.fps = float64(frames) / elapsed.Seconds()
				frames = 0
				since = now
			}
		}
	}
}
