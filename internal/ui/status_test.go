package ui

import "testing"

func TestStatusLine(t *testing.T) {
	s := Status{
		Rule:       "High Life",
		RuleString: "B36/S23",
		Generation: 12,
		Live:       40,
		Tracked:    190,
		FPS:        59.6,
	}
	if got, want := s.Line(), "High Life (B36/S23) | gen 12 | live 40 | tracked 190 | FPS 60"; got != want {
		t.Fatalf("Line() = %q, expected %q", got, want)
	}

	s.Paused = true
	s.Message = "stable"
	if got, want := s.Line(), "High Life (B36/S23) | gen 12 | live 40 | tracked 190 | FPS 60 | paused | stable"; got != want {
		t.Fatalf("Line() = %q, expected %q", got, want)
	}

	s.Rule = "B36/S23"
	if got, want := s.Title("life"), "life | B36/S23 | gen 12 | live 40 | paused"; got != want {
		t.Fatalf("Title() = %q, expected %q", got, want)
	}
}
