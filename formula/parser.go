package formula

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gridengine/sheetengine/grid"
)

// ErrParse is the sentinel wrapped by every formula syntax error. When a
// formula-classified cell text fails to parse, Sheet.SetCell returns
// ErrFormulaParse carrying this error's message (ErrParse itself is not
// in that error's chain).
var ErrParse = errors.New("formula: parse error")

// Parse parses expr (a formula's text with its leading '=' already
// stripped) into an Expr, or returns an error wrapping ErrParse.
//
// Grammar: term (('+'|'-') term)* where term is factor (('*'|'/') factor)*,
// factor is ('-'|'+')* primary, and primary is a number, a cell reference,
// or a parenthesized expr.
func Parse(expr string) (Expr, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	e, rest, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unexpected token %q", ErrParse, rest[0])
	}
	return e, nil
}

var termOps = map[token]byte{tokAdd: '+', tokSub: '-'}
var factorOps = map[token]byte{tokMul: '*', tokDiv: '/'}

func parseTerm(tokens []token) (Expr, []token, error) {
	return parseBinary(tokens, termOps, parseFactor)
}

func parseFactor(tokens []token) (Expr, []token, error) {
	return parseBinary(tokens, factorOps, parseUnary)
}

func parseBinary(tokens []token, ops map[token]byte, next func([]token) (Expr, []token, error)) (Expr, []token, error) {
	x, rest, err := next(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 {
		op, ok := ops[rest[0]]
		if !ok {
			break
		}
		y, tail, err := next(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		x = BinaryExpr{X: x, Op: op, Y: y}
		rest = tail
	}
	return x, rest, nil
}

func parseUnary(tokens []token) (Expr, []token, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: expected a term", ErrParse)
	}
	if tokens[0] == tokSub || tokens[0] == tokAdd {
		op := byte(tokens[0][0])
		x, rest, err := parseUnary(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		if op == '+' {
			return x, rest, nil // unary + is a no-op; don't wrap it
		}
		if n, ok := x.(NumberExpr); ok { // fold the negation into the literal
			return NumberExpr{Value: -n.Value}, rest, nil
		}
		return UnaryExpr{Op: op, X: x}, rest, nil
	}
	return parsePrimary(tokens)
}

func parsePrimary(tokens []token) (Expr, []token, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("%w: expected a term", ErrParse)
	}
	head := tokens[0]
	if head == tokLPar {
		e, rest, err := parseTerm(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		if len(rest) == 0 || rest[0] != tokRPar {
			return nil, nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		return e, rest[1:], nil
	}
	if pos := grid.ParsePosition(string(head)); looksLikeRef(string(head)) {
		return RefExpr{Ref: pos}, tokens[1:], nil
	}
	if v, err := strconv.ParseFloat(string(head), 64); err == nil {
		return NumberExpr{Value: v}, tokens[1:], nil
	}
	return nil, nil, fmt.Errorf("%w: unexpected token %q", ErrParse, head)
}

// looksLikeRef is true when s is shaped like a cell reference (letters
// then digits) textually, even if grid.ParsePosition rejects it as out of
// range or malformed — that case becomes RefExpr{Ref: grid.None}, which
// the sheet resolver turns into a KindRef error at evaluation time.
func looksLikeRef(s string) bool {
	if s == "" || !isUpper(s[0]) {
		return false
	}
	i := 0
	for i < len(s) && isUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return false // all letters, no digits: not a ref, not a number either
	}
	for j := i; j < len(s); j++ {
		if !isDigit(s[j]) {
			return false
		}
	}
	return true
}
