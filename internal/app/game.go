//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sparse-life/internal/render"
	"sparse-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	hudWidth int
	title    string
}

// New constructs a Game for the provided controller with a HUD panel of
// hudWidth pixels on the right.
func New(ctl *Controller, hudWidth int) *Game {
	size := ctl.View().Size()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctl, hudWidth),
		palette:  render.Palette(),
		hudWidth: hudWidth,
	}
}

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeySpace, Simple(CmdTogglePause)},
	{ebiten.KeyEnter, Simple(CmdResume)},
	{ebiten.KeyN, Simple(CmdStep)},
	{ebiten.KeyR, Reseed(0)},
	{ebiten.KeyC, Simple(CmdClear)},
	{ebiten.KeyB, Simple(CmdToggleBoundary)},
	{ebiten.KeyBracketLeft, CycleRule(-1)},
	{ebiten.KeyBracketRight, CycleRule(1)},
	{ebiten.KeyEqual, ResizeCell(1)},
	{ebiten.KeyMinus, ResizeCell(-1)},
	{ebiten.KeyArrowLeft, Pan(-4, 0)},
	{ebiten.KeyArrowRight, Pan(4, 0)},
	{ebiten.KeyArrowUp, Pan(0, -4)},
	{ebiten.KeyArrowDown, Pan(0, 4)},
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			// Rule errors are already surfaced through the status line.
			_ = g.ctl.Apply(kc.cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = g.ctl.Apply(Reseed(time.Now().UnixNano()))
	}

	viewW, _ := g.ctl.View().PixelSize()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < viewW {
			_ = g.ctl.Apply(Toggle(mx, my))
		}
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		_ = g.ctl.Apply(ResizeCell(1))
	} else if wy < 0 {
		_ = g.ctl.Apply(ResizeCell(-1))
	}

	if g.hud != nil {
		g.hud.Update(viewW)
	}

	g.ctl.Advance()

	if title := g.ctl.Status(ebiten.ActualFPS()).Title("sparse-life"); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.ctl.View()
	g.painter.Blit(screen, view.Frame(), g.palette, view.CellSize())
	view.Present()
	if g.hud != nil {
		w, _ := view.PixelSize()
		g.hud.Draw(screen, w, g.ctl.Status(ebiten.ActualFPS()))
	}
}

// Layout gives the simulation everything left of the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctl.Resize(max(outsideWidth-g.hudWidth, 1), outsideHeight)
	return outsideWidth, outsideHeight
}
