package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

func TestIsDistinctFromNullSafe(t *testing.T) {
	e := NewEvaluator(ModeInterpret, nil, nil, nil)

	v, err := e.Eval(newTestCtx(), ast.NewComparison(ast.OpIsDistinctFrom, ast.NewNullLiteral(), ast.NewNullLiteral()))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)

	v, err = e.Eval(newTestCtx(), ast.NewComparison(ast.OpIsDistinctFrom, ast.NewNullLiteral(), ast.NewLongLiteral(1)))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestIsDistinctFromMismatchedTypesIsError(t *testing.T) {
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	_, err := e.Eval(newTestCtx(), ast.NewComparison(ast.OpIsDistinctFrom, ast.NewLongLiteral(1), ast.NewStringLiteral([]byte("x"))))
	require.Error(t, err)
}

func TestBetweenInclusive(t *testing.T) {
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	expr := ast.NewBetween(ast.NewLongLiteral(5), ast.NewLongLiteral(1), ast.NewLongLiteral(5))
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestComparisonNullPropagates(t *testing.T) {
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), ast.NewComparison(ast.OpEQ, ast.NewLongLiteral(1), ast.NewNullLiteral()))
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestComparisonNullTakesPriorityOverResidualSibling(t *testing.T) {
	// NULL = x with x unresolved must fold to concrete null, not
	// residualize around the unresolved sibling: null has unconditional
	// priority over a residual operand for strict binary operators.
	e := NewEvaluator(ModeOptimize, mapSymbols{}, nil, nil)
	v, err := e.Eval(newTestCtx(), ast.NewComparison(ast.OpEQ, ast.NewNullLiteral(), ast.NewQualifiedNameReference("x")))
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestExactInt64EqualityAvoidsFloatRounding(t *testing.T) {
	// 9007199254740993 and 9007199254740992 are distinct int64s that
	// round to the same float64; equality must not conflate them.
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), ast.NewComparison(ast.OpEQ,
		ast.NewLongLiteral(9007199254740993), ast.NewLongLiteral(9007199254740992)))
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), v)
}
