package sheetengine

import (
	"strconv"

	"github.com/gridengine/sheetengine/formula"
)

// FormulaError re-exports the formula package's tagged evaluation-error
// value so callers never need to import formula themselves just to
// compare a CellValue against #REF!/#VALUE!/#DIV/0!.
type FormulaError = formula.FormulaError

// FormulaErrorKind re-exports the formula package's error-kind tags.
type FormulaErrorKind = formula.FormulaErrorKind

const (
	KindRef   = formula.KindRef
	KindValue = formula.KindValue
	KindDiv0  = formula.KindDiv0
)

// CellValue is the sum type callers observe from Cell.Value(): a Text, a
// Number, or an Error. Modeled as a closed interface with an unexported
// marker method, the same shape the formula package uses for its own
// expression-tree sum type.
type CellValue interface {
	isCellValue()
	String() string
}

// TextValue is a literal string value.
type TextValue string

func (TextValue) isCellValue()    {}
func (v TextValue) String() string { return string(v) }

// NumberValue is a computed or literal numeric value.
type NumberValue float64

func (NumberValue) isCellValue() {}
func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// ErrorValue carries a FormulaError produced during formula evaluation.
type ErrorValue struct {
	Err FormulaError
}

func (ErrorValue) isCellValue()    {}
func (v ErrorValue) String() string { return v.Err.String() }
