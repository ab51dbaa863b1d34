package sheetengine

import (
	"golang.org/x/exp/maps"

	"github.com/gridengine/sheetengine/grid"
)

// Cell is one grid cell: its content, a memoized value, and the set of
// positions whose content references this cell (its inverse edges).
// Outgoing edges are never stored — they are always derived from
// content.referencedCells().
//
// Each cell owns a back-pointer to its sheet and its own dependents set,
// rather than the sheet keeping a separate adjacency map, so that edge
// rewiring stays local to the two cells involved.
type Cell struct {
	sheet   *Sheet
	pos     grid.Position
	content cellContent
	cache   *CellValue
	// dependents are the inverse edges: cells whose content references
	// this cell's position.
	dependents map[grid.Position]struct{}
}

func newCell(sheet *Sheet, pos grid.Position) *Cell {
	return &Cell{
		sheet:      sheet,
		pos:        pos,
		content:    emptyContent{},
		dependents: make(map[grid.Position]struct{}),
	}
}

// Value returns the cell's value, computing and memoizing it on a cache
// miss.
func (c *Cell) Value() CellValue {
	if c.cache != nil {
		return *c.cache
	}
	v := c.content.evaluate(c.sheet.resolve)
	c.cache = &v
	return v
}

// Text returns the cell's display text: "" for Empty, the raw text for
// Text, or "=" + the formula's pretty-printed form for Formula.
func (c *Cell) Text() string {
	return c.content.displayText()
}

// ReferencedCells returns this cell's outgoing edges: the positions its
// content refers to, in evaluation order. May include invalid positions.
func (c *Cell) ReferencedCells() []grid.Position {
	return c.content.referencedCells()
}

// IsReferenced reports whether this cell's content refers to any other
// cell.
func (c *Cell) IsReferenced() bool {
	return len(c.content.referencedCells()) > 0
}

// set installs newContent as this cell's content. The caller
// (Sheet.SetCell) has already classified the text, run the cycle check
// against newContent's prospective references, and auto-created any
// placeholder targets; set only performs the edge rewiring and cache
// invalidation, which can no longer fail.
func (c *Cell) set(newContent cellContent) {
	oldRefs := c.content.referencedCells()
	for _, ref := range oldRefs {
		if target := c.sheet.lookup(ref); target != nil {
			delete(target.dependents, c.pos)
		}
	}

	c.content = newContent

	for _, ref := range newContent.referencedCells() {
		if target := c.sheet.lookup(ref); target != nil {
			target.dependents[c.pos] = struct{}{}
		}
	}

	invalidateTransitive(c.sheet, c.pos)
}

// invalidateCache clears just this cell's memoized value.
func (c *Cell) invalidateCache() {
	c.cache = nil
}

// dependentPositions returns a snapshot of this cell's inverse edges, safe
// to range over while the underlying set may be mutated by the caller.
func (c *Cell) dependentPositions() []grid.Position {
	return maps.Keys(c.dependents)
}
