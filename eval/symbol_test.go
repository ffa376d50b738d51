package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

type mapSymbols map[string]value.Value

func (m mapSymbols) ResolveSymbol(parts []string) (value.Value, bool) {
	v, ok := m[parts[len(parts)-1]]
	return v, ok
}

func TestUnresolvedSymbolResidualizesInOptimizeMode(t *testing.T) {
	expr := ast.NewComparison(ast.OpEQ, ast.NewQualifiedNameReference("x"), ast.NewLongLiteral(5))
	e := NewEvaluator(ModeOptimize, mapSymbols{}, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.True(t, value.IsResidual(v))
}

func TestUnresolvedSymbolErrorsInInterpretMode(t *testing.T) {
	expr := ast.NewQualifiedNameReference("x")
	e := NewEvaluator(ModeInterpret, mapSymbols{}, nil, nil)
	_, err := e.Eval(newTestCtx(), expr)
	require.Error(t, err)
}

func TestResolvedSymbolFoldsInOptimizeMode(t *testing.T) {
	expr := ast.NewComparison(ast.OpEQ, ast.NewQualifiedNameReference("x"), ast.NewLongLiteral(5))
	e := NewEvaluator(ModeOptimize, mapSymbols{"x": value.Int64(5)}, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}
