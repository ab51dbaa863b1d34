package formula

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridengine/sheetengine/grid"
)

func constResolver(vals map[grid.Position]float64) Resolver {
	return func(p grid.Position) (float64, error) {
		if !p.IsValid() {
			return 0, FormulaError{Kind: KindRef}
		}
		v, ok := vals[p]
		if !ok {
			return 0, nil
		}
		return v, nil
	}
}

func Test_Parse_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"addition", "1+2", 3},
		{"precedence", "1+2*3", 7},
		{"parens", "(1+2)*3", 9},
		{"unary minus", "-5+10", 5},
		{"unary plus", "+5-2", 3},
		{"nested parens", "((1))", 1},
		{"decimal", "1.5+1.5", 3},
		{"double unary", "--5", 5},
		{"left assoc subtraction", "10-2-3", 5},
		{"left assoc division", "100/10/2", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.expr)
			require.NoError(t, err)
			got, err := e.Evaluate(constResolver(nil))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []string{"", "1+", "1+*2", "(1+2", "1+2)", "@", "1 2"}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			assert.Error(t, err)
		})
	}
}

func Test_ReferencedCells_Order(t *testing.T) {
	e, err := Parse("A1+B2*C3")
	require.NoError(t, err)
	refs := e.ReferencedCells()
	want := []grid.Position{
		{Row: 0, Col: 0}, // A1
		{Row: 1, Col: 1}, // B2
		{Row: 2, Col: 2}, // C3
	}
	assert.Equal(t, want, refs)
}

func Test_Evaluate_Div0(t *testing.T) {
	e, err := Parse("A1/0")
	require.NoError(t, err)
	_, err = e.Evaluate(constResolver(map[grid.Position]float64{{Row: 0, Col: 0}: 5}))
	var ferr FormulaError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindDiv0, ferr.Kind)
}

func Test_Evaluate_Overflow_Is_Div0(t *testing.T) {
	// A literal large enough to parse as a finite float64 (< ~1.8e308)
	// but whose product with itself a few times over overflows to +Inf.
	huge := "1" + strings.Repeat("0", 90) // 1e90, well within float64 range
	e, err := Parse(huge + "*" + huge + "*" + huge + "*" + huge)
	require.NoError(t, err)
	_, err = e.Evaluate(constResolver(nil))
	var ferr FormulaError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindDiv0, ferr.Kind)
}

func Test_Pretty_RoundTrip(t *testing.T) {
	// P7: parse then pretty-print then reparse yields an equivalent tree.
	exprs := []string{"1+2*3", "(1+2)*3", "1-2-3", "1-(2-3)", "A1+B2", "-A1+3", "10/2/5"}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			e1, err := Parse(expr)
			require.NoError(t, err)
			pretty := e1.Pretty()
			e2, err := Parse(pretty)
			require.NoError(t, err)

			resolver := constResolver(map[grid.Position]float64{
				{Row: 0, Col: 0}: 7,
				{Row: 1, Col: 1}: 11,
			})
			v1, err1 := e1.Evaluate(resolver)
			v2, err2 := e2.Evaluate(resolver)
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.InDelta(t, v1, v2, 1e-9)
			assert.Equal(t, e1.ReferencedCells(), e2.ReferencedCells())
		})
	}
}

func Test_NumberExpr_Pretty(t *testing.T) {
	assert.Equal(t, "3", NumberExpr{Value: 3}.Pretty())
}
