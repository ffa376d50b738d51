package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

func TestReconstructRoundTripsScalars(t *testing.T) {
	cases := []value.Value{
		value.Int64(42),
		value.Float64(3.5),
		value.Bool(true),
		value.Bytes("hi"),
		value.Null{},
	}
	e := NewEvaluator(ModeInterpret, nil, nil, nil)
	for _, v := range cases {
		lit := reconstruct(v)
		got, err := e.Eval(newTestCtx(), lit)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestReconstructNaNUsesFunctionCall(t *testing.T) {
	lit := reconstruct(value.Float64(math.NaN()))
	fc, ok := lit.(*ast.FunctionCall)
	require.True(t, ok)
	require.Equal(t, "nan", fc.Name)
}

func TestReconstructInfinityUsesFunctionCall(t *testing.T) {
	lit := reconstruct(value.Float64(math.Inf(1)))
	fc, ok := lit.(*ast.FunctionCall)
	require.True(t, ok)
	require.Equal(t, "infinity", fc.Name)
}
