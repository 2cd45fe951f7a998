// Package board implements the dense rectangular grid the sokoban engine
// plays on, plus the primitives (cell flags, directions, positions) it is
// built from.
package board

// Cell is a bit-flag encoding of what occupies a single grid square.
//
// A stored Board only ever carries the Wall and Box bits (never Player or
// Goal - the player and goals live in sidecar fields on puzzle.Sokoban).
// The wider flag set exists so the text parser/serializer in package
// puzzle can reuse the same byte values the original puzzle format used.
type Cell byte

const (
	Space  Cell = 0
	Wall   Cell = 1 << 0
	Player Cell = 1 << 1
	Box    Cell = 1 << 2
	Goal   Cell = 1 << 3
)

// IsWall reports whether the wall bit is set.
func (c Cell) IsWall() bool { return c&Wall != 0 }

// IsBox reports whether the box bit is set.
func (c Cell) IsBox() bool { return c&Box != 0 }

// IsSpace reports whether the cell is free of both walls and boxes. A
// cell that is only a goal (Goal bit set, no Wall/Box) still counts as
// space - goals never occupy the board representation.
func (c Cell) IsSpace() bool { return c&(Wall|Box) == 0 }
