package board

import (
	"bytes"
	"fmt"
)

// Board is a dense, row-major rectangular grid of Cells. Instances are
// treated as immutable by convention: the successor function and all
// copy/slice helpers return new Boards rather than mutating a shared one,
// so a Board that has been inserted into a visited set is never mutated
// afterwards (see puzzle.Sokoban's lifecycle notes).
type Board struct {
	cells      []Cell
	rows, cols int
}

// New allocates a rows x cols board with every cell set to Space.
func New(rows, cols int) Board {
	return Board{cells: make([]Cell, rows*cols), rows: rows, cols: cols}
}

// FromRows builds a board from row-major cell data; each inner slice must
// have the same length.
func FromRows(rows [][]Cell) Board {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	b := New(h, w)
	for r, row := range rows {
		for c, cell := range row {
			b.cells[r*w+c] = cell
		}
	}
	return b
}

// Pad returns a copy of b surrounded by a border of the given thickness
// filled with Space - used by the deadlock-basis generator to embed a
// candidate sub-board before searching for a push sequence that clears
// or rearranges it (spec.md §4.6).
func Pad(b Board, thickness int) Board {
	out := New(b.rows+2*thickness, b.cols+2*thickness)
	for _, p := range b.Positions() {
		out.SetInPlace(Position{p.Row + thickness, p.Col + thickness}, b.At(p))
	}
	return out
}

func (b Board) Rows() int { return b.rows }
func (b Board) Cols() int { return b.cols }

// Shape returns (rows, cols), the key under which the deadlock table
// indexes sub-board patterns.
func (b Board) Shape() (int, int) { return b.rows, b.cols }

func (b Board) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// InBounds reports whether p is within the board's rectangle.
func (b Board) InBounds(p Position) bool { return b.inBounds(p) }

func (b Board) index(p Position) int { return p.Row*b.cols + p.Col }

// At returns the cell at p. p is not bounds-checked: an out-of-bounds p
// either panics or reads another cell of the grid - callers on the
// engine's hot path are expected to bounds-check first, exactly as the
// successor function in spec.md §4.1 does.
func (b Board) At(p Position) Cell {
	return b.cells[b.index(p)]
}

// AtRC is the (row, col) tuple form of At.
func (b Board) AtRC(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

// Set returns a copy of the board with the cell at p replaced; the
// receiver is left untouched.
func (b Board) Set(p Position, c Cell) Board {
	cp := b.Copy()
	cp.cells[cp.index(p)] = c
	return cp
}

// SetInPlace mutates the board's cell at p. Only used by code (the
// successor function, the generator) that owns a just-copied board and
// has not yet published it anywhere.
func (b Board) SetInPlace(p Position, c Cell) {
	b.cells[b.index(p)] = c
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	cp := make([]Cell, len(b.cells))
	copy(cp, b.cells)
	return Board{cells: cp, rows: b.rows, cols: b.cols}
}

// SubBoard returns the h x w rectangle starting at (row0, col0) as a new,
// independent Board - used by the deadlock matcher's sliding window.
func (b Board) SubBoard(row0, col0, h, w int) Board {
	sub := New(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			sub.cells[r*w+c] = b.cells[(row0+r)*b.cols+(col0+c)]
		}
	}
	return sub
}

// Positions returns every position on the board in row-major order.
func (b Board) Positions() []Position {
	out := make([]Position, 0, len(b.cells))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			out = append(out, Position{r, c})
		}
	}
	return out
}

// FreeSpaces returns every position whose cell is Space.
func (b Board) FreeSpaces() []Position {
	var out []Position
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] == Space {
				out = append(out, Position{r, c})
			}
		}
	}
	return out
}

// Boxes returns every position whose cell has the Box bit set.
func (b Board) Boxes() []Position {
	var out []Position
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c].IsBox() {
				out = append(out, Position{r, c})
			}
		}
	}
	return out
}

// Equal compares shape and contents.
func (b Board) Equal(o Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	return bytes.Equal(toBytes(b.cells), toBytes(o.cells))
}

func toBytes(cells []Cell) []byte {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = byte(c)
	}
	return out
}

// Hash is derived from the raw bytes of the board, consistent with Equal.
func (b Board) Hash() uint64 {
	// FNV-1a over shape + contents, so boards of different shape but
	// identical bytes never collide in a way Equal would disagree with.
	var h uint64 = 14695981039346656037
	mix := func(x uint64) {
		h ^= x
		h *= 1099511628211
	}
	mix(uint64(b.rows))
	mix(uint64(b.cols))
	for _, c := range b.cells {
		mix(uint64(c))
	}
	return h
}

// rot90CCW rotates the board 90 degrees counter-clockwise, swapping rows
// and cols. result[i][j] = b[j][cols-1-i], matching numpy.rot90(k=1),
// which the original implementation's isometric_boards property used.
func rot90CCW(b Board) Board {
	out := New(b.cols, b.rows)
	for i := 0; i < b.cols; i++ {
		for j := 0; j < b.rows; j++ {
			out.cells[i*b.rows+j] = b.cells[j*b.cols+(b.cols-1-i)]
		}
	}
	return out
}

// flipRows reverses row order (flip across the horizontal axis).
func flipRows(b Board) Board {
	out := New(b.rows, b.cols)
	for r := 0; r < b.rows; r++ {
		copy(out.cells[r*b.cols:(r+1)*b.cols], b.cells[(b.rows-1-r)*b.cols:(b.rows-r)*b.cols])
	}
	return out
}

// flipCols reverses column order (flip across the vertical axis).
func flipCols(b Board) Board {
	out := New(b.rows, b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			out.cells[r*b.cols+c] = b.cells[r*b.cols+(b.cols-1-c)]
		}
	}
	return out
}

// IsometricBoards returns the (deduplicated) orbit of the board under the
// dihedral group of the rectangle: identity, horizontal flip, vertical
// flip, 180-degree rotation, and the same four composed with a 90-degree
// rotation - eight candidates before dedup, fewer once the board has any
// symmetry. Order follows the source's r in {0, 1} outer loop.
func (b Board) IsometricBoards() []Board {
	base := []Board{b, flipRows(b), flipCols(b), flipRows(flipCols(b))}
	candidates := make([]Board, 0, 8)
	candidates = append(candidates, base...)
	for _, v := range base {
		candidates = append(candidates, rot90CCW(v))
	}

	unique := make([]Board, 0, len(candidates))
	for _, cand := range candidates {
		dup := false
		for _, u := range unique {
			if u.Equal(cand) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, cand)
		}
	}
	return unique
}

// ternaryCode maps a {Space, Wall, Box}-only cell to its base-3 digit.
func ternaryCode(c Cell) uint64 {
	switch c {
	case Space:
		return 0
	case Wall:
		return 1
	case Box:
		return 2
	}
	panic(fmt.Sprintf("board: cell %v is not encodable (must be Space, Wall or Box)", c))
}

// Encode returns the ternary integer encoding of a board restricted to
// {Space, Wall, Box}: sum over cells i (row-major) of code(cell_i) * 3^i.
// Bijective for a fixed shape (spec.md §3); panics on a board that still
// carries Player/Goal bits, since those never belong in a stored Board.
func (b Board) Encode() uint64 {
	var code uint64
	var pow uint64 = 1
	for _, c := range b.cells {
		code += ternaryCode(c) * pow
		pow *= 3
	}
	return code
}

// FromEncoding is the inverse of Encode for a given shape.
func FromEncoding(code uint64, rows, cols int) Board {
	decode := [3]Cell{Space, Wall, Box}
	b := New(rows, cols)
	for i := range b.cells {
		b.cells[i] = decode[code%3]
		code /= 3
	}
	return b
}

// Covers implements the sub-board pattern predicate from spec.md §4.2:
// pattern covers sub iff (sub | pattern) == sub, i.e. every set bit in
// the pattern is also set in sub. Space (0) in the pattern means "don't
// care"; Wall/Box mean "must be wall"/"must be box".
func Covers(pattern, sub Board) bool {
	if pattern.rows != sub.rows || pattern.cols != sub.cols {
		return false
	}
	for i := range pattern.cells {
		if (sub.cells[i] | pattern.cells[i]) != sub.cells[i] {
			return false
		}
	}
	return true
}

// BasisLine serializes the board as one semicolon-separated row-per-
// segment text line using '.'=space, '#'=wall, '$'=box - the deadlock
// basis file format documented in SPEC_FULL.md §4.
func (b Board) BasisLine() string {
	chars := map[Cell]byte{Space: '.', Wall: '#', Box: '$'}
	var buf bytes.Buffer
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			buf.WriteByte(';')
		}
		for c := 0; c < b.cols; c++ {
			buf.WriteByte(chars[b.AtRC(r, c)])
		}
	}
	return buf.String()
}

// ParseBasisLine is the inverse of BasisLine.
func ParseBasisLine(line string) (Board, error) {
	segments := bytes.Split([]byte(line), []byte{';'})
	decode := map[byte]Cell{'.': Space, '#': Wall, '$': Box}
	rows := make([][]Cell, len(segments))
	width := -1
	for i, seg := range segments {
		if width == -1 {
			width = len(seg)
		} else if len(seg) != width {
			return Board{}, fmt.Errorf("board: ragged basis line %q", line)
		}
		row := make([]Cell, len(seg))
		for j, ch := range seg {
			cell, ok := decode[ch]
			if !ok {
				return Board{}, fmt.Errorf("board: invalid basis character %q in %q", ch, line)
			}
			row[j] = cell
		}
		rows[i] = row
	}
	return FromRows(rows), nil
}
