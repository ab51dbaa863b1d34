package sheetengine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridengine/sheetengine/grid"
)

// Sheet is a sparse two-dimensional store of cells, plus bookkeeping for
// the printable rectangle (the tight bounding box over non-Empty cells).
// All operations execute to completion on the caller's goroutine; there
// is no internal concurrency and no thread-safety claim.
type Sheet struct {
	// cells holds every cell ever touched: explicit writes and
	// auto-created placeholders alike. Entries are never removed —
	// ClearCell resets content to Empty rather than deleting the entry,
	// so inverse-edge memberships held by other cells stay valid.
	cells map[grid.Position]*Cell
	// nonEmpty is the subset of cells positions with non-Empty content;
	// it drives size bookkeeping directly off that membership rather
	// than replicating the nested-row trim-scan of a dense grid.
	nonEmpty map[grid.Position]struct{}
	size     grid.Size
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{
		cells:    make(map[grid.Position]*Cell),
		nonEmpty: make(map[grid.Position]struct{}),
	}
}

// lookup returns the cell at pos, or nil if none has ever been touched
// there. Unlike GetCell, it does not validate pos — callers (resolve,
// the dependency graph) only ever pass positions already known to be
// valid, or intentionally pass invalid ones expecting a nil/false-y miss.
func (s *Sheet) lookup(pos grid.Position) *Cell {
	return s.cells[pos]
}

// ensureCell returns the cell at pos, creating an Empty one (without
// affecting the printable size) if none exists yet.
func (s *Sheet) ensureCell(pos grid.Position) *Cell {
	if c, ok := s.cells[pos]; ok {
		return c
	}
	c := newCell(s, pos)
	s.cells[pos] = c
	return c
}

// SetCell classifies text and installs it at pos. It is transactional:
// on ErrInvalidPosition, ErrFormulaParse, or ErrCircularDependency, no
// externally observable state has changed. Setting a cell's text to its
// current display text is a no-op.
func (s *Sheet) SetCell(pos grid.Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}

	existing := s.cells[pos]
	if existing != nil && existing.Text() == text {
		return nil
	}
	if existing == nil && text == "" {
		return nil
	}

	content, err := classifyContent(text)
	if err != nil {
		return err // already wraps ErrFormulaParse; nothing mutated yet
	}

	candidateRefs := content.referencedCells()
	if hasCycle(s, pos, candidateRefs) {
		return fmt.Errorf("%w: %v", ErrCircularDependency, pos)
	}

	// Past this point nothing can fail; commit.
	cell := s.ensureCell(pos)
	for _, ref := range candidateRefs {
		if ref.IsValid() {
			s.ensureCell(ref)
		}
	}
	cell.set(content)

	if _, empty := content.(emptyContent); empty {
		s.shrink(pos)
	} else {
		s.grow(pos)
	}
	return nil
}

// GetCell returns the cell at pos, or nil if no cell has ever been
// touched there (neither an explicit write nor an auto-created
// placeholder). An auto-created placeholder IS returned here even
// though it does not contribute to PrintableSize.
func (s *Sheet) GetCell(pos grid.Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	return s.cells[pos], nil
}

// ClearCell resets the cell at pos to Empty. If no cell exists there, or
// it is already Empty, this is a no-op. The cell object (if any) is
// never removed from the sheet, so other cells' inverse-edge memberships
// pointing at it remain valid: a cleared cell that is still referenced
// behaves as an Empty cell rather than vanishing out from under its
// referrers.
func (s *Sheet) ClearCell(pos grid.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, pos)
	}
	cell := s.cells[pos]
	if cell == nil {
		return nil
	}
	if _, ok := cell.content.(emptyContent); ok {
		return nil
	}
	cell.set(emptyContent{})
	s.shrink(pos)
	return nil
}

// grow extends the printable rectangle to include pos, which has just
// become non-Empty.
func (s *Sheet) grow(pos grid.Position) {
	s.nonEmpty[pos] = struct{}{}
	if pos.Row+1 > s.size.Rows {
		s.size.Rows = pos.Row + 1
	}
	if pos.Col+1 > s.size.Cols {
		s.size.Cols = pos.Col + 1
	}
}

// shrink removes pos from the printable rectangle's membership, now that
// it has become Empty, and recomputes the bounding box if pos was on its
// edge.
func (s *Sheet) shrink(pos grid.Position) {
	if _, ok := s.nonEmpty[pos]; !ok {
		return
	}
	delete(s.nonEmpty, pos)
	onEdge := pos.Row+1 == s.size.Rows || pos.Col+1 == s.size.Cols
	if !onEdge {
		return
	}
	maxRow, maxCol := -1, -1
	for p := range s.nonEmpty {
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	s.size = grid.Size{Rows: maxRow + 1, Cols: maxCol + 1}
}

// PrintableSize returns the current printable rectangle.
func (s *Sheet) PrintableSize() grid.Size {
	return s.size
}

// PrintValues renders the printable rectangle's values, tab-separated
// within a row, newline per row.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printTable(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.Value().String()
	})
}

// PrintTexts renders the printable rectangle's display texts, tab-
// separated within a row, newline per row.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printTable(w, func(c *Cell) string {
		if c == nil {
			return ""
		}
		return c.Text()
	})
}

func (s *Sheet) printTable(w io.Writer, render func(*Cell) string) error {
	var sb strings.Builder
	for row := 0; row < s.size.Rows; row++ {
		for col := 0; col < s.size.Cols; col++ {
			if col > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(render(s.cells[grid.Position{Row: row, Col: col}]))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// resolve implements formula.Resolver over this sheet: an invalid
// position raises KindRef; an absent cell resolves to 0 without being
// materialized; a Number resolves directly; an empty-string Text
// resolves to 0, any other Text is parsed as a float64 or raises
// KindValue; an Error propagates.
func (s *Sheet) resolve(pos grid.Position) (float64, error) {
	if !pos.IsValid() {
		return 0, FormulaError{Kind: KindRef}
	}
	cell := s.lookup(pos)
	if cell == nil {
		return 0, nil
	}
	switch v := cell.Value().(type) {
	case NumberValue:
		return float64(v), nil
	case TextValue:
		if v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, FormulaError{Kind: KindValue}
		}
		return f, nil
	case ErrorValue:
		return 0, v.Err
	default:
		return 0, nil
	}
}
