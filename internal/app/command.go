package app

import "fmt"

// CommandKind enumerates the user actions a frontend can deliver.
type CommandKind int

const (
	// CmdToggle flips the cell under a screen pixel position.
	CmdToggle CommandKind = iota
	// CmdPan moves the view by a number of cells.
	CmdPan
	// CmdResizeCell grows or shrinks the on-screen cell size.
	CmdResizeCell
	// CmdSetRule selects a rule by name or rulestring.
	CmdSetRule
	// CmdCycleRule moves through the registered rules.
	CmdCycleRule
	CmdPause
	CmdResume
	CmdTogglePause
	// CmdStep runs exactly one generation and leaves the simulation paused.
	CmdStep
	// CmdReseed resets the plane; a zero seed reuses the current one.
	CmdReseed
	CmdClear
	// CmdToggleBoundary shows or hides tracked dead cells.
	CmdToggleBoundary
	CmdQuit
)

var commandNames = map[CommandKind]string{
	CmdToggle:         "toggle",
	CmdPan:            "pan",
	CmdResizeCell:     "resize-cell",
	CmdSetRule:        "set-rule",
	CmdCycleRule:      "cycle-rule",
	CmdPause:          "pause",
	CmdResume:         "resume",
	CmdTogglePause:    "toggle-pause",
	CmdStep:           "step",
	CmdReseed:         "reseed",
	CmdClear:          "clear",
	CmdToggleBoundary: "toggle-boundary",
	CmdQuit:           "quit",
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is one discrete user action.
type Command struct {
	Kind CommandKind
	// X, Y hold a pixel position for CmdToggle and a cell offset for CmdPan.
	X, Y int
	// Delta is the step for CmdResizeCell and CmdCycleRule.
	Delta int
	// Name is the rule for CmdSetRule.
	Name string
	// Seed is used by CmdReseed.
	Seed int64
}

// Toggle returns a command flipping the cell under pixel (px, py).
func Toggle(px, py int) Command { return Command{Kind: CmdToggle, X: px, Y: py} }

// Pan returns a command moving the view by (dx, dy) cells.
func Pan(dx, dy int) Command { return Command{Kind: CmdPan, X: dx, Y: dy} }

// ResizeCell returns a command changing the cell size by delta pixels.
func ResizeCell(delta int) Command { return Command{Kind: CmdResizeCell, Delta: delta} }

// SetRule returns a command selecting the named rule.
func SetRule(name string) Command { return Command{Kind: CmdSetRule, Name: name} }

// CycleRule returns a command moving delta places through the rule list.
func CycleRule(delta int) Command { return Command{Kind: CmdCycleRule, Delta: delta} }

// Reseed returns a command resetting the plane with seed.
func Reseed(seed int64) Command { return Command{Kind: CmdReseed, Seed: seed} }

// Simple returns an argument-free command of the given kind.
func Simple(kind CommandKind) Command { return Command{Kind: kind} }
