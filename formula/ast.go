package formula

import (
	"strconv"

	"github.com/gridengine/sheetengine/grid"
)

// Resolver supplies the numeric value of a cell reference during
// evaluation. It returns an error (ordinarily a FormulaError) when the
// referenced position has no sensible numeric value.
type Resolver func(grid.Position) (float64, error)

// Expr is a parsed formula: it evaluates under a resolver, pretty-prints
// to canonical infix form, and lists the positions it refers to in
// evaluation order. The interface is closed over exactly the node kinds
// below via the unexported marker method.
type Expr interface {
	isExpr()
	Evaluate(resolve Resolver) (float64, error)
	Pretty() string
	ReferencedCells() []grid.Position
}

// precedence of a binary operator; higher binds tighter.
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) isExpr() {}

func (n NumberExpr) Evaluate(Resolver) (float64, error) { return n.Value, nil }

func (n NumberExpr) Pretty() string {
	// Plain decimal, never exponent form: the lexer reads no exponents.
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (NumberExpr) ReferencedCells() []grid.Position { return nil }

// RefExpr is a reference to another cell, by position. Ref may be an
// invalid position (a formula can textually contain e.g. "ZZZ1"); the
// resolver is responsible for raising KindRef in that case.
type RefExpr struct {
	Ref grid.Position
}

func (RefExpr) isExpr() {}

func (r RefExpr) Evaluate(resolve Resolver) (float64, error) {
	return resolve(r.Ref)
}

func (r RefExpr) Pretty() string {
	return r.Ref.String()
}

func (r RefExpr) ReferencedCells() []grid.Position {
	return []grid.Position{r.Ref}
}

// UnaryExpr is a unary + or - applied to an operand.
type UnaryExpr struct {
	Op byte
	X  Expr
}

func (UnaryExpr) isExpr() {}

func (u UnaryExpr) Evaluate(resolve Resolver) (float64, error) {
	x, err := u.X.Evaluate(resolve)
	if err != nil {
		return 0, err
	}
	if u.Op == '-' {
		return -x, nil
	}
	return x, nil
}

func (u UnaryExpr) Pretty() string {
	inner := u.X.Pretty()
	if bin, ok := u.X.(BinaryExpr); ok && precedence(bin.Op) > 0 {
		inner = "(" + inner + ")"
	}
	return string(u.Op) + inner
}

func (u UnaryExpr) ReferencedCells() []grid.Position {
	return u.X.ReferencedCells()
}

// BinaryExpr is a binary arithmetic expression: X Op Y.
type BinaryExpr struct {
	X  Expr
	Op byte
	Y  Expr
}

func (BinaryExpr) isExpr() {}

func (b BinaryExpr) Evaluate(resolve Resolver) (float64, error) {
	// Left-to-right operand evaluation; the first raised error wins.
	x, err := b.X.Evaluate(resolve)
	if err != nil {
		return 0, err
	}
	y, err := b.Y.Evaluate(resolve)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case '+':
		return checkFinite(x + y)
	case '-':
		return checkFinite(x - y)
	case '*':
		return checkFinite(x * y)
	case '/':
		if y == 0 {
			return 0, FormulaError{Kind: KindDiv0}
		}
		return checkFinite(x / y)
	}
	return 0, FormulaError{Kind: KindValue}
}

func (b BinaryExpr) Pretty() string {
	myPrec := precedence(b.Op)
	left := parenthesize(b.X, myPrec, b.Op, false)
	right := parenthesize(b.Y, myPrec, b.Op, true)
	return left + string(b.Op) + right
}

// parenthesize wraps child's pretty-printed form in parentheses when
// the parent operator's precedence (or, for a non-associative parent
// operator on its right operand, equal precedence) would otherwise
// change its meaning.
func parenthesize(child Expr, parentPrec int, parentOp byte, isRightOperand bool) string {
	bin, ok := child.(BinaryExpr)
	if !ok {
		return child.Pretty()
	}
	childPrec := precedence(bin.Op)
	needsParens := childPrec < parentPrec
	nonAssociative := parentOp == '-' || parentOp == '/'
	if isRightOperand && childPrec == parentPrec && nonAssociative {
		needsParens = true
	}
	if needsParens {
		return "(" + child.Pretty() + ")"
	}
	return child.Pretty()
}

func (b BinaryExpr) ReferencedCells() []grid.Position {
	return append(b.X.ReferencedCells(), b.Y.ReferencedCells()...)
}

func checkFinite(v float64) (float64, error) {
	if isFinite(v) {
		return v, nil
	}
	return 0, FormulaError{Kind: KindDiv0}
}
