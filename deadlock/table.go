// Package deadlock implements the area-indexed sub-board pattern table
// (spec.md §3, §4.5) and the matcher that uses it to detect provably
// unsolvable states.
package deadlock

import "github.com/vcte/sokoban/board"

// Area is a (rows, cols) shape, the key the deadlock table is indexed by.
type Area struct {
	Rows, Cols int
}

// Table maps an area to the set of encoded patterns of that area which
// are known to be deadlocked. Membership is tested via the ternary
// encoding (board.Board.Encode), so lookup is a single map hit per window.
type Table map[Area]map[uint64]bool

// NewTable returns an empty table.
func NewTable() Table {
	return make(Table)
}

// Add inserts b (already known-deadlocked) into the table under its own
// shape.
func (t Table) Add(b board.Board) {
	rows, cols := b.Shape()
	area := Area{rows, cols}
	if t[area] == nil {
		t[area] = make(map[uint64]bool)
	}
	t[area][b.Encode()] = true
}

// Contains reports whether b's exact encoding is present under its shape.
func (t Table) Contains(b board.Board) bool {
	rows, cols := b.Shape()
	area := Area{rows, cols}
	set := t[area]
	if set == nil {
		return false
	}
	return set[b.Encode()]
}

// Areas returns every area shape the table has entries for.
func (t Table) Areas() []Area {
	out := make([]Area, 0, len(t))
	for a := range t {
		out = append(out, a)
	}
	return out
}

// Size returns the total number of encoded patterns across all areas.
func (t Table) Size() int {
	n := 0
	for _, set := range t {
		n += len(set)
	}
	return n
}

// Expand takes a single bit-subset-minimal basis pattern and closes it
// under isometry and "don't care" substitution, adding every resulting
// concrete pattern to the table. This is the operation
// gen_deadlock_table_from_basis performs in the original implementation
// (spec.md §9 Q1, resolved in SPEC_FULL.md §5.1): for every isometric
// copy of basis, and for every originally-Space cell in that copy, all
// three settings {Space, Wall, Box} are substituted in turn.
func (t Table) Expand(basis board.Board) {
	for _, variant := range basis.IsometricBoards() {
		expandVariant(t, variant)
	}
}

func expandVariant(t Table, variant board.Board) {
	rows, cols := variant.Shape()
	var spaces []board.Position
	for _, p := range variant.Positions() {
		if variant.At(p) == board.Space {
			spaces = append(spaces, p)
		}
	}
	settings := []board.Cell{board.Space, board.Wall, board.Box}

	// enumerate the len(spaces)-digit base-3 product of {Space, Wall, Box}
	total := 1
	for range spaces {
		total *= 3
	}
	for config := 0; config < total; config++ {
		b := variant.Copy()
		rem := config
		for _, p := range spaces {
			b.SetInPlace(p, settings[rem%3])
			rem /= 3
		}
		area := Area{rows, cols}
		if t[area] == nil {
			t[area] = make(map[uint64]bool)
		}
		t[area][b.Encode()] = true
	}
}
