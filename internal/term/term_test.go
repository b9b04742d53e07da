package term

import (
	"context"
	"errors"
	"testing"

	"sparse-life/internal/app"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 6)

	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Empty = true
	ctl, err := cfg.Build(ViewSize(20, 6))
	if err != nil {
		t.Fatalf("build controller: %v", err)
	}
	return New(screen, ctl), screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestViewSize(t *testing.T) {
	if w, h := ViewSize(80, 25); w != 40 || h != 24 {
		t.Fatalf("ViewSize(80, 25) = %d, %d", w, h)
	}
	if w, h := ViewSize(1, 1); w != 1 || h != 1 {
		t.Fatalf("ViewSize(1, 1) = %d, %d", w, h)
	}
}

func TestCommandForKey(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want app.Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.Simple(app.CmdTogglePause)},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), app.Simple(app.CmdStep)},
		{tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), app.CycleRule(1)},
		{tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone), app.CycleRule(-1)},
		{tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), app.Simple(app.CmdToggleBoundary)},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.Simple(app.CmdQuit)},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.Simple(app.CmdQuit)},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), app.Pan(-4, 0)},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), app.Pan(0, 4)},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), app.Simple(app.CmdResume)},
	}
	for _, tc := range cases {
		got, ok := CommandForKey(tc.ev)
		if !ok || got != tc.want {
			t.Fatalf("CommandForKey(%v) = %+v, %v; expected %+v", tc.ev.Name(), got, ok, tc.want)
		}
	}
	if _, ok := CommandForKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Fatalf("unbound key mapped to a command")
	}
	if _, ok := CommandForKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Fatalf("unbound special key mapped to a command")
	}
}

func TestMouseTogglesCell(t *testing.T) {
	f, screen := newTestFrontend(t)
	sim := f.ctl.Sim()

	// Column 4 is the left half of pixel 2; the view starts at (-5, -2).
	f.Handle(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	if sim.CellState(-3, -1) != 1 {
		t.Fatalf("expected click to set (-3, -1)")
	}
	// Held button does not toggle again.
	f.Handle(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	if sim.CellState(-3, -1) != 1 {
		t.Fatalf("drag toggled the cell back")
	}

	f.Draw()
	if got := runeAt(screen, 4, 1); got != '█' {
		t.Fatalf("left half = %q, expected a block", got)
	}
	if got := runeAt(screen, 5, 1); got != '█' {
		t.Fatalf("right half = %q, expected a block", got)
	}
	if got := runeAt(screen, 6, 1); got != ' ' {
		t.Fatalf("neighbor = %q, expected blank", got)
	}

	f.Handle(tcell.NewEventMouse(4, 1, tcell.ButtonNone, tcell.ModNone))
	f.Handle(tcell.NewEventMouse(5, 1, tcell.Button1, tcell.ModNone))
	if sim.CellState(-3, -1) != 0 || sim.Tracked() != 0 {
		t.Fatalf("second click should clear the plane, tracked %d", sim.Tracked())
	}
}

func TestStatusRowIgnoresClicks(t *testing.T) {
	f, _ := newTestFrontend(t)
	f.Handle(tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	if f.ctl.Sim().LiveCells() != 0 {
		t.Fatalf("click on the status row changed the plane")
	}
}

func TestDrawStatusLine(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.Draw()
	want := []rune("Conway's")
	for i, r := range want {
		if got := runeAt(screen, i, 5); got != r {
			t.Fatalf("status col %d = %q, expected %q", i, got, r)
		}
	}
	if f.ctl.View().Frames() != 1 {
		t.Fatalf("expected Draw to present one frame")
	}
}

func TestBoundaryOverlay(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.ctl.Sim().Toggle(0, 0)
	f.Handle(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	f.Draw()
	// (0, 0) sits at pixel (5, 2), so (1, 0) starts at column 12.
	if got := runeAt(screen, 10, 2); got != '█' {
		t.Fatalf("live cell = %q", got)
	}
	if got := runeAt(screen, 12, 2); got != '·' {
		t.Fatalf("boundary cell = %q, expected a dot", got)
	}
}

func TestHandleQuit(t *testing.T) {
	f, _ := newTestFrontend(t)
	err := f.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !errors.Is(err, app.ErrQuit) {
		t.Fatalf("Handle(q) = %v, expected ErrQuit", err)
	}
	if err := f.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)); err != nil {
		t.Fatalf("Handle(n) = %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, expected context.Canceled", err)
	}
}
