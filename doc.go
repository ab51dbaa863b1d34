// Package sheetengine implements an in-memory spreadsheet: a sparse grid
// of cells whose contents are empty, literal text, or a formula
// expression over other cells. Formulas are evaluated lazily and their
// values memoized; a cell's cache is invalidated transitively whenever a
// cell it (directly or transitively) depends on changes; an edit that
// would introduce a circular dependency is rejected before it takes
// effect.
//
// The dependency graph, cycle detection, and cache invalidation are the
// core of this package (see Sheet and Cell). The formula grammar itself
// — arithmetic over cell references, see the formula subpackage — is a
// separate collaborator: Sheet parses formula text with formula.Parse and
// otherwise relies only on the formula.Expr interface.
//
// All operations run to completion synchronously on the caller's
// goroutine; there is no internal locking and no concurrency safety
// claim. Callers sharing a Sheet across goroutines must synchronize
// externally.
package sheetengine
