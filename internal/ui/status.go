package ui

import (
	"fmt"
	"strings"
)

// Status holds the values shown in the window caption and status line.
type Status struct {
	Rule       string
	RuleString string
	Generation int
	Live       int
	Tracked    int
	FPS        float64
	Paused     bool
	Message    string
}

// Title renders the window caption.
func (s Status) Title(app string) string {
	title := fmt.Sprintf("%s | %s | gen %d | live %d", app, s.Rule, s.Generation, s.Live)
	if s.Paused {
		title += " | paused"
	}
	return title
}

// Line renders the one-line status bar used by the terminal frontend and the
// HUD.
func (s Status) Line() string {
	parts := []string{
		s.ruleLabel(),
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("live %d", s.Live),
		fmt.Sprintf("tracked %d", s.Tracked),
		fmt.Sprintf("FPS %.0f", s.FPS),
	}
	if s.Paused {
		parts = append(parts, "paused")
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	return strings.Join(parts, " | ")
}

func (s Status) ruleLabel() string {
	if s.RuleString == "" || s.RuleString == s.Rule {
		return s.Rule
	}
	return fmt.Sprintf("%s (%s)", s.Rule, s.RuleString)
}
