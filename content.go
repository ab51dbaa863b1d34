package sheetengine

import (
	"fmt"

	"github.com/gridengine/sheetengine/formula"
	"github.com/gridengine/sheetengine/grid"
)

// escapeSign suppresses formula interpretation for the remainder of a
// Text cell's display text.
const escapeSign = '\''

// formulaSign marks a cell's text as a formula when it is the first
// character and the text is at least two characters long.
const formulaSign = '='

// cellContent is a sum type over Empty, Text, or Formula content. It is
// a closed Go interface with an unexported marker method, avoiding the
// need for virtual dispatch over a closed set of kinds, the same shape
// the formula package's own Expr sum type uses.
type cellContent interface {
	isCellContent()
	displayText() string
	referencedCells() []grid.Position
	evaluate(resolve formula.Resolver) CellValue
}

// classifyContent classifies raw cell input:
//  1. "" -> Empty
//  2. len>1 && text[0]=='=' -> parse text[1:]; failure aborts the edit
//     (wrapped ErrFormulaParse), success -> Formula
//  3. else -> Text (a lone "=" falls here, not into case 2)
func classifyContent(text string) (cellContent, error) {
	switch {
	case text == "":
		return emptyContent{}, nil
	case len(text) > 1 && text[0] == formulaSign:
		tree, err := formula.Parse(text[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormulaParse, err)
		}
		return formulaContent{tree: tree, text: string(formulaSign) + tree.Pretty()}, nil
	default:
		return textContent{raw: text}, nil
	}
}

type emptyContent struct{}

func (emptyContent) isCellContent()                  {}
func (emptyContent) displayText() string             { return "" }
func (emptyContent) referencedCells() []grid.Position { return nil }
func (emptyContent) evaluate(formula.Resolver) CellValue {
	return TextValue("")
}

type textContent struct {
	raw string
}

func (textContent) isCellContent()                  {}
func (t textContent) displayText() string             { return t.raw }
func (textContent) referencedCells() []grid.Position { return nil }
func (t textContent) evaluate(formula.Resolver) CellValue {
	if t.raw != "" && t.raw[0] == escapeSign {
		return TextValue(t.raw[1:])
	}
	return TextValue(t.raw)
}

type formulaContent struct {
	tree formula.Expr
	text string // cached "=" + tree.Pretty()
}

func (formulaContent) isCellContent()       {}
func (f formulaContent) displayText() string { return f.text }
func (f formulaContent) referencedCells() []grid.Position {
	return f.tree.ReferencedCells()
}
func (f formulaContent) evaluate(resolve formula.Resolver) CellValue {
	v, err := f.tree.Evaluate(resolve)
	if err != nil {
		var ferr FormulaError
		if fe, ok := err.(FormulaError); ok {
			ferr = fe
		} else {
			ferr = FormulaError{Kind: KindValue}
		}
		return ErrorValue{Err: ferr}
	}
	return NumberValue(v)
}
