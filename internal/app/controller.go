package app

import (
	"errors"
	"slices"
	"strconv"

	"sparse-life/internal/core"
	"sparse-life/internal/ui"
	"sparse-life/internal/viewport"
	"sparse-life/pkg/sims/life"
)

// ErrQuit is returned by Apply when the user asked to leave.
var ErrQuit = errors.New("quit requested")

// Notifier is told when the controller pauses on its own.
type Notifier interface {
	AutoPaused(reason string)
}

// Controller applies user commands to a simulation and its viewport and
// drives generations at a fixed rate. It is the single owner of both.
type Controller struct {
	sim   *life.Simulation
	view  *viewport.Viewport
	timer *core.FixedStep

	paused   bool
	stepOnce bool
	last     life.TickResult
	message  string

	notifier Notifier
}

var (
	_ core.Sim                       = (*life.Simulation)(nil)
	_ core.ParameterProvider         = (*Controller)(nil)
	_ core.ParameterControlsProvider = (*Controller)(nil)
	_ core.IntParameterSetter        = (*Controller)(nil)
)

// NewController wires sim to view and ticks at tps generations per second.
func NewController(sim *life.Simulation, view *viewport.Viewport, tps int) *Controller {
	c := &Controller{sim: sim, view: view, timer: core.NewFixedStep(tps)}
	sim.SetRenderer(view)
	view.Redraw(sim)
	return c
}

// SetNotifier registers the collaborator told about auto-pauses.
func (c *Controller) SetNotifier(n Notifier) { c.notifier = n }

// Sim exposes the controlled simulation.
func (c *Controller) Sim() *life.Simulation { return c.sim }

// View exposes the controlled viewport.
func (c *Controller) View() *viewport.Viewport { return c.view }

// Paused reports whether generations are suspended.
func (c *Controller) Paused() bool { return c.paused }

// SetPaused suspends or resumes generations.
func (c *Controller) SetPaused(p bool) {
	c.paused = p
	if !p {
		c.message = ""
	}
}

// Last returns the result of the most recent generation.
func (c *Controller) Last() life.TickResult { return c.last }

// Message returns the latest notice for the status line, if any.
func (c *Controller) Message() string { return c.message }

// TPS reports the target generation rate.
func (c *Controller) TPS() int { return c.timer.TPS() }

// Apply executes one command. A rejected rule name is returned as an error
// and also shown in the status line; ErrQuit signals the frontend to exit.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Kind {
	case CmdToggle:
		l, ok := c.view.ScreenToWorld(cmd.X, cmd.Y)
		if !ok {
			return nil
		}
		c.sim.Toggle(l.X, l.Y)
		c.refreshOverlay()
	case CmdPan:
		c.view.Pan(cmd.X, cmd.Y)
		c.view.Redraw(c.sim)
	case CmdResizeCell:
		if c.view.ResizeCell(cmd.Delta) {
			c.view.Redraw(c.sim)
		}
	case CmdSetRule:
		if err := c.sim.SelectRuleSet(cmd.Name); err != nil {
			c.message = err.Error()
			return err
		}
		c.message = ""
	case CmdCycleRule:
		c.cycleRule(cmd.Delta)
	case CmdPause:
		c.paused = true
	case CmdResume:
		c.SetPaused(false)
	case CmdTogglePause:
		c.SetPaused(!c.paused)
	case CmdStep:
		c.stepOnce = true
	case CmdReseed:
		c.sim.Reset(cmd.Seed)
		c.last = life.TickResult{Live: c.sim.LiveCells()}
		c.message = ""
		c.view.Redraw(c.sim)
	case CmdClear:
		c.sim.Clear()
		c.last = life.TickResult{}
		c.paused = true
		c.view.Redraw(c.sim)
	case CmdToggleBoundary:
		c.view.SetShowBoundary(!c.view.ShowBoundary())
		c.view.Redraw(c.sim)
	case CmdQuit:
		return ErrQuit
	}
	return nil
}

// Resize adapts the viewport to a new pixel area.
func (c *Controller) Resize(pxW, pxH int) {
	w, h := c.view.PixelSize()
	if w == pxW && h == pxH {
		return
	}
	c.view.SetPixelSize(pxW, pxH)
	c.view.Redraw(c.sim)
}

// Advance runs at most one generation if the simulation is running and the
// tick timer is due, or if a single step was requested. It reports whether a
// generation ran.
func (c *Controller) Advance() bool {
	if c.stepOnce {
		c.stepOnce = false
		c.Tick()
		c.paused = true
		return true
	}
	if c.paused || !c.timer.ShouldStep() {
		return false
	}
	c.Tick()
	return true
}

// Tick runs one generation immediately, pausing on a fixed point or on
// extinction.
func (c *Controller) Tick() life.TickResult {
	res := c.sim.Tick()
	c.last = res
	c.refreshOverlay()
	switch {
	case res.Extinct:
		c.autoPause("extinct")
	case res.Stable:
		c.autoPause("stable")
	}
	return res
}

func (c *Controller) autoPause(reason string) {
	wasRunning := !c.paused
	c.paused = true
	c.message = reason
	if wasRunning && c.notifier != nil {
		c.notifier.AutoPaused(reason)
	}
}

// Boundary cells appear and vanish without Draw notifications.
func (c *Controller) refreshOverlay() {
	if c.view.ShowBoundary() {
		c.view.Redraw(c.sim)
	}
}

func (c *Controller) cycleRule(delta int) {
	names := life.Names()
	idx := slices.Index(names, c.sim.Rule().Name)
	if idx < 0 {
		idx = 0
		if delta > 0 {
			delta--
		}
	}
	n := len(names)
	idx = ((idx+delta)%n + n) % n
	// Registered names always resolve.
	_ = c.sim.SelectRuleSet(names[idx])
	c.message = ""
}

// Status assembles the values shown in the caption and status line.
func (c *Controller) Status(fps float64) ui.Status {
	rule := c.sim.Rule()
	return ui.Status{
		Rule:       rule.Name,
		RuleString: rule.String(),
		Generation: c.sim.Generation(),
		Live:       c.sim.LiveCells(),
		Tracked:    c.sim.Tracked(),
		FPS:        fps,
		Paused:     c.paused,
		Message:    c.message,
	}
}

// Parameters returns the HUD snapshot.
func (c *Controller) Parameters() core.ParameterSnapshot {
	rule := c.sim.Rule()
	origin := c.view.Origin()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				stringParam("rule", "Rule", rule.Name),
				stringParam("rule_string", "Rulestring", rule.String()),
				intParam("rule_index", "Rule index", slices.Index(life.Names(), rule.Name)),
				intParam("generation", "Generation", c.sim.Generation()),
				intParam("live", "Live cells", c.sim.LiveCells()),
				intParam("tracked", "Tracked cells", c.sim.Tracked()),
				boolParam("paused", "Paused", c.paused),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				intParam("cell_size", "Cell size", c.view.CellSize()),
				intParam("tps", "Generations/s", c.timer.TPS()),
				intParam("origin_x", "Origin X", origin.X),
				intParam("origin_y", "Origin Y", origin.Y),
				boolParam("boundary", "Boundary overlay", c.view.ShowBoundary()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule_index", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: float64(len(life.Names()) - 1), HasMax: true},
		{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: viewport.MinCellSize, HasMin: true, Max: viewport.MaxCellSize, HasMax: true},
		{Key: "tps", Label: "Generations/s", Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true, Max: 240, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule_index":
		names := life.Names()
		if value < 0 || value >= len(names) {
			return false
		}
		return c.Apply(SetRule(names[value])) == nil
	case "cell_size":
		if value < viewport.MinCellSize || value > viewport.MaxCellSize {
			return false
		}
		if c.view.SetCellSize(value) {
			c.view.Redraw(c.sim)
		}
		return true
	case "tps":
		if value <= 0 {
			return false
		}
		c.timer.SetTPS(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
