package config

import (
	"testing"

	"github.com/vcte/sokoban/deadlock"
)

func TestBuildHeuristicKnownNames(t *testing.T) {
	for _, name := range []string{"none", "remainingBoxes", "manhattan", "minMatching"} {
		if _, err := BuildHeuristic(name, nil, deadlock.Dynamic); err != nil {
			t.Fatalf("BuildHeuristic(%q): unexpected error %v", name, err)
		}
	}
}

func TestBuildHeuristicUnknownNameErrors(t *testing.T) {
	if _, err := BuildHeuristic("bogus", nil, deadlock.Dynamic); err == nil {
		t.Fatalf("expected an error for an unknown heuristic name")
	}
}

func TestBuildHeuristicWithDeadlockSuffixRequiresTable(t *testing.T) {
	h, err := BuildHeuristic("manhattan+deadlock", nil, deadlock.Dynamic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h == nil {
		t.Fatalf("expected a usable heuristic even with a nil table")
	}
}

func TestParseDeadlockMode(t *testing.T) {
	cases := map[string]deadlock.Mode{
		"":           deadlock.Dynamic,
		"dynamic":    deadlock.Dynamic,
		"static":     deadlock.Static,
		"unmodified": deadlock.Unmodified,
	}
	for in, want := range cases {
		got, err := ParseDeadlockMode(in)
		if err != nil {
			t.Fatalf("ParseDeadlockMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDeadlockMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDeadlockMode("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}
