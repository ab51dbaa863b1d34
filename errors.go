package sheetengine

import "errors"

// Structural errors, returned by Sheet/Cell operations and never embedded
// in a CellValue. Each aborts the operation with no visible mutation.
var (
	// ErrInvalidPosition is returned when a position argument fails
	// grid.Position.IsValid.
	ErrInvalidPosition = errors.New("sheetengine: invalid position")

	// ErrFormulaParse is returned when SetCell receives formula text
	// (leading '=', length >= 2) that fails to parse.
	ErrFormulaParse = errors.New("sheetengine: formula did not parse")

	// ErrCircularDependency is returned when the prospective content of
	// a SetCell call would introduce a cycle in the reference graph.
	ErrCircularDependency = errors.New("sheetengine: circular dependency")
)
