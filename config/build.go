package config

import (
	"fmt"
	"strings"

	"github.com/vcte/sokoban/deadlock"
	"github.com/vcte/sokoban/heuristic"
)

// BuildHeuristic resolves the Heuristic string into a heuristic.Heuristic,
// optionally pointwise-maxed with the deadlock heuristic when table is
// non-nil and the name carries a "+deadlock" suffix.
func BuildHeuristic(name string, table deadlock.Table, mode deadlock.Mode) (heuristic.Heuristic, error) {
	base, withDeadlock := strings.CutSuffix(name, "+deadlock")

	var h heuristic.Heuristic
	switch base {
	case "", "none":
		h = heuristic.NoHeuristic{}
	case "remainingBoxes":
		h = heuristic.RemainingBoxes{}
	case "manhattan":
		h = heuristic.ManhattanDist{}
	case "minMatching":
		h = heuristic.MinMatching{}
	default:
		return nil, fmt.Errorf("config: unknown heuristic %q", name)
	}

	if withDeadlock && table != nil {
		h = heuristic.Max(h, heuristic.Deadlock{Table: table, Mode: mode})
	}
	return h, nil
}

// ParseDeadlockMode maps the config string to a deadlock.Mode.
func ParseDeadlockMode(s string) (deadlock.Mode, error) {
	switch s {
	case "", "dynamic":
		return deadlock.Dynamic, nil
	case "static":
		return deadlock.Static, nil
	case "unmodified":
		return deadlock.Unmodified, nil
	default:
		return 0, fmt.Errorf("config: unknown deadlock mode %q", s)
	}
}
