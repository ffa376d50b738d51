package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

func TestLikeWildcardMatch(t *testing.T) {
	expr := ast.NewLike(ast.NewStringLiteral([]byte("hello world")), ast.NewStringLiteral([]byte("hello%")), nil)
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
}

func TestLikeDegradesToEquality(t *testing.T) {
	expr := ast.NewLike(ast.NewStringLiteral([]byte("abc")), ast.NewStringLiteral([]byte("abc")), nil)
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)

	compiled, ok := e.caches.likePatterns[expr]
	require.True(t, ok)
	require.False(t, compiled.isRe)
}

func TestLikeNullSubjectIsNull(t *testing.T) {
	expr := ast.NewLike(ast.NewNullLiteral(), ast.NewStringLiteral([]byte("a%")), nil)
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestLikeNullEscapePropagatesNull(t *testing.T) {
	expr := ast.NewLike(ast.NewStringLiteral([]byte("abc")), ast.NewStringLiteral([]byte("a%")), ast.NewNullLiteral())
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestLikeResidualEscapeResidualizesInOptimizeMode(t *testing.T) {
	expr := ast.NewLike(ast.NewStringLiteral([]byte("abc")), ast.NewStringLiteral([]byte("a%")), ast.NewQualifiedNameReference("esc"))
	e := NewEvaluator(ModeOptimize, mapSymbols{}, nil, nil)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.True(t, value.IsResidual(v))
}
