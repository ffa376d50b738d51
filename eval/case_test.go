package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/resolver"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

func TestSearchedCasePicksFirstTrueBranch(t *testing.T) {
	// CASE WHEN false THEN 1 WHEN true THEN 2 ELSE 3 END => 2
	expr := ast.NewSearchedCase([]ast.WhenClause{
		{Cond: ast.NewBooleanLiteral(false), Result: ast.NewLongLiteral(1)},
		{Cond: ast.NewBooleanLiteral(true), Result: ast.NewLongLiteral(2)},
	}, ast.NewLongLiteral(3))

	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Int64(2), v)
}

func TestCoalesceSkipsNullsAndDoesNotEvaluateAfterFirstConcrete(t *testing.T) {
	// COALESCE(null, null, 'x', error_expr) => 'x' without evaluating error_expr
	failing := ast.NewFunctionCall("boom")
	expr := ast.NewCoalesce(
		ast.NewNullLiteral(),
		ast.NewNullLiteral(),
		ast.NewStringLiteral([]byte("x")),
		failing,
	)

	reg := resolver.NewStaticRegistry(&resolver.FunctionDescriptor{
		Name:          "boom",
		ArgTypes:      []resolver.ValueType{},
		Deterministic: true,
		Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
			return nil, errors.New("should never be called")
		},
	})

	e := NewEvaluator(ModeInterpret, nil, nil, reg)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Bytes("x"), v)
}

func TestSearchedCaseResidualConditionReturnsWholeNodeUnreduced(t *testing.T) {
	// CASE WHEN false THEN 1 WHEN x THEN 2 ELSE 3 END with x unresolved
	// must residualize to the ORIGINAL node, not a trimmed CASE with
	// the already-false first WHEN dropped.
	expr := ast.NewSearchedCase([]ast.WhenClause{
		{Cond: ast.NewBooleanLiteral(false), Result: ast.NewLongLiteral(1)},
		{Cond: ast.NewQualifiedNameReference("x"), Result: ast.NewLongLiteral(2)},
	}, ast.NewLongLiteral(3))

	e := NewEvaluator(ModeOptimize, mapSymbols{}, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.True(t, value.IsResidual(v))
	r := v.(value.Residual)
	require.Same(t, expr, r.Expr)
}

func TestSimpleCaseResidualMatchReturnsWholeNodeUnreduced(t *testing.T) {
	// CASE op WHEN 1 THEN 'a' WHEN x THEN 'b' ELSE 'c' END with x
	// unresolved and op != 1 must residualize to the ORIGINAL node,
	// not a rebuilt CASE with resolved-false leading WHENs dropped.
	expr := ast.NewSimpleCase(ast.NewLongLiteral(9), []ast.SimpleWhenClause{
		{Match: ast.NewLongLiteral(1), Result: ast.NewStringLiteral([]byte("a"))},
		{Match: ast.NewQualifiedNameReference("x"), Result: ast.NewStringLiteral([]byte("b"))},
	}, ast.NewStringLiteral([]byte("c")))

	e := NewEvaluator(ModeOptimize, mapSymbols{}, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.True(t, value.IsResidual(v))
	r := v.(value.Residual)
	require.Same(t, expr, r.Expr)
}

func TestCoalesceAllNullIsNull(t *testing.T) {
	expr := ast.NewCoalesce(ast.NewNullLiteral(), ast.NewNullLiteral())
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}
