package puzzle

import (
	"fmt"
	"strings"

	"github.com/vcte/sokoban/board"
)

// microban maps the puzzle text alphabet (spec.md §6) to the combined
// flags a character represents before player/goal are split out into
// Sokoban's sidecar fields.
var microban = map[rune]board.Cell{
	'#': board.Wall,
	' ': board.Space,
	'@': board.Player,
	'$': board.Box,
	'.': board.Goal,
	'&': board.Player | board.Goal,
	'*': board.Box | board.Goal,
}

var microbanReverse = map[board.Cell]rune{
	board.Space:                 ' ',
	board.Wall:                  '#',
	board.Player:                '@',
	board.Box:                   '$',
	board.Goal:                  '.',
	board.Player | board.Goal:   '&',
	board.Box | board.Goal:      '*',
}

// Parse decodes a puzzle in the text format from spec.md §6: one row per
// line, right-padded with Space to the longest line's length. Unknown
// characters decode as Space. The Player and Goal bits are stripped from
// the board and moved into the returned Sokoban's Player/Goals fields.
func Parse(text string) (Sokoban, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := 0
	for _, line := range lines {
		if len([]rune(line)) > width {
			width = len([]rune(line))
		}
	}
	height := len(lines)

	b := board.New(height, width)
	var player *board.Position
	var goals []board.Position

	for r, line := range lines {
		runes := []rune(line)
		for c := 0; c < width; c++ {
			var ch rune = ' '
			if c < len(runes) {
				ch = runes[c]
			}
			flags, ok := microban[ch]
			if !ok {
				flags = board.Space
			}
			pos := board.Position{Row: r, Col: c}
			if flags&board.Player != 0 {
				p := pos
				player = &p
			}
			if flags&board.Goal != 0 {
				goals = append(goals, pos)
			}
			cellFlags := flags &^ (board.Player | board.Goal)
			b.SetInPlace(pos, cellFlags)
		}
	}

	if player == nil {
		return Sokoban{}, fmt.Errorf("puzzle: no player found in input")
	}
	s := Sokoban{Board: b, Player: *player, Goals: goals}
	if s.Board.At(s.Player).IsWall() {
		return Sokoban{}, fmt.Errorf("puzzle: player position %v is a wall", s.Player)
	}
	for _, g := range goals {
		if !s.Board.InBounds(g) {
			return Sokoban{}, fmt.Errorf("puzzle: goal %v out of bounds", g)
		}
		if s.Board.At(g).IsWall() {
			return Sokoban{}, fmt.Errorf("puzzle: goal %v is a wall", g)
		}
	}
	return s, nil
}

// String renders the state back into the same text alphabet (spec.md §6):
// row-major, player as '@' ('&' on a goal), box on goal as '*', etc.
func (s Sokoban) String() string {
	goalSet := make(map[board.Position]bool, len(s.Goals))
	for _, g := range s.Goals {
		goalSet[g] = true
	}

	rows, cols := s.Board.Shape()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := board.Position{Row: r, Col: c}
			cell := s.Board.At(pos)
			if pos == s.Player {
				cell |= board.Player
			}
			if goalSet[pos] {
				cell |= board.Goal
			}
			ch, ok := microbanReverse[cell]
			if !ok {
				ch = '?'
			}
			sb.WriteRune(ch)
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
