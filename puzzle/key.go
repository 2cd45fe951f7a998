package puzzle

import "strconv"

// Key returns a deterministic string uniquely identifying the state up to
// Equal - used by package search to key its visited/predecessor maps,
// since board.Board (and therefore Sokoban) holds a slice and is not a
// valid Go map key on its own.
func (s Sokoban) Key() string {
	rows, cols := s.Board.Shape()
	buf := make([]byte, 0, rows*cols+32+8*len(s.Goals))
	buf = strconv.AppendInt(buf, int64(rows), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(cols), 10)
	buf = append(buf, ':')
	for _, p := range s.Board.Positions() {
		buf = append(buf, byte(s.Board.At(p)))
	}
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(s.Player.Row), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(s.Player.Col), 10)
	buf = append(buf, '|')
	for _, g := range s.Goals {
		buf = strconv.AppendInt(buf, int64(g.Row), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(g.Col), 10)
		buf = append(buf, ';')
	}
	return string(buf)
}
