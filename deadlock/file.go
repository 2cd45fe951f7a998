package deadlock

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vcte/sokoban/board"
)

// WriteTable serializes t in the binary format documented in
// SPEC_FULL.md §4: for each area, a header line "AREA rows cols count",
// then count little-endian uint32 ternary encodings (3**20 fits a uint32
// but not a signed int32, hence the unsigned width - see SPEC_FULL.md §4
// for why this departs from the original's platform-dependent array
// type).
func WriteTable(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for _, area := range t.Areas() {
		set := t[area]
		if _, err := fmt.Fprintf(bw, "AREA %d %d %d\n", area.Rows, area.Cols, len(set)); err != nil {
			return err
		}
		var buf [4]byte
		for code := range set {
			binary.LittleEndian.PutUint32(buf[:], uint32(code))
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadTable parses the format WriteTable produces.
func ReadTable(r io.Reader) (Table, error) {
	t := NewTable()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF && line == "" {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if err == io.EOF {
				break
			}
			continue
		}
		var rows, cols, count int
		if _, serr := fmt.Sscanf(line, "AREA %d %d %d", &rows, &cols, &count); serr != nil {
			return nil, fmt.Errorf("deadlock: malformed table header %q: %w", line, serr)
		}
		area := Area{rows, cols}
		set := make(map[uint64]bool, count)
		var buf [4]byte
		for i := 0; i < count; i++ {
			if _, rerr := io.ReadFull(br, buf[:]); rerr != nil {
				return nil, fmt.Errorf("deadlock: truncated table for area %v: %w", area, rerr)
			}
			set[uint64(binary.LittleEndian.Uint32(buf[:]))] = true
		}
		t[area] = set
		if err == io.EOF {
			break
		}
	}
	return t, nil
}

// WriteBasis writes one board.BasisLine per line - the deadlock basis
// file format (SPEC_FULL.md §4), consumed and produced by package
// basisgen.
func WriteBasis(w io.Writer, basis []board.Board) error {
	bw := bufio.NewWriter(w)
	for _, b := range basis {
		if _, err := fmt.Fprintln(bw, b.BasisLine()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBasis is the inverse of WriteBasis.
func ReadBasis(r io.Reader) ([]board.Board, error) {
	var out []board.Board
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		b, err := board.ParseBasisLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadTableFile and SaveTableFile are thin os.Open/os.Create wrappers
// used by cmd/sokobansolve and cmd/sokobangendeadlock.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

func SaveTableFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteTable(f, t)
}

func LoadBasisFile(path string) ([]board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBasis(f)
}

func SaveBasisFile(path string, basis []board.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteBasis(f, basis)
}
