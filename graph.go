package sheetengine

import "github.com/gridengine/sheetengine/grid"

// hasCycle runs a single-source DFS starting from the prospective
// outgoing edges of the cell at from (its candidate new content, not yet
// installed), walking the *existing* content of every other cell it
// reaches. A cycle exists iff the search reaches from again. The sheet's
// graph is acyclic by induction (no prior SetCell would have installed a
// cycle), so only edges reachable from the new candidateRefs can
// possibly loop back to from.
func hasCycle(sheet *Sheet, from grid.Position, candidateRefs []grid.Position) bool {
	visited := make(map[grid.Position]struct{})
	var visit func(p grid.Position) bool
	visit = func(p grid.Position) bool {
		if p == from {
			return true
		}
		if _, ok := visited[p]; ok {
			return false
		}
		visited[p] = struct{}{}
		cell := sheet.lookup(p)
		if cell == nil {
			return false
		}
		for _, ref := range cell.content.referencedCells() {
			if visit(ref) {
				return true
			}
		}
		return false
	}
	for _, ref := range candidateRefs {
		if visit(ref) {
			return true
		}
	}
	return false
}

// invalidateTransitive clears the cache of the cell at start and, by BFS
// over inverse edges, every transitive dependent whose cache is
// populated. A dependent whose cache is already a miss is not descended
// into further: if its cache were stale, it would already have been
// cleared the last time one of its own dependencies changed.
func invalidateTransitive(sheet *Sheet, start grid.Position) {
	startCell := sheet.lookup(start)
	if startCell == nil {
		return
	}
	startCell.invalidateCache()

	queue := startCell.dependentPositions()
	seen := map[grid.Position]struct{}{start: {}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		cell := sheet.lookup(p)
		if cell == nil || cell.cache == nil {
			continue
		}
		cell.invalidateCache()
		queue = append(queue, cell.dependentPositions()...)
	}
}
