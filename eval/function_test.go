package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/resolver"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

func TestFunctionCallNullArgumentShortCircuitsBeforeInvoke(t *testing.T) {
	reg := resolver.NewStaticRegistry(&resolver.FunctionDescriptor{
		Name:          "upper",
		ArgTypes:      []resolver.ValueType{resolver.Varchar},
		Deterministic: true,
		Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
			t.Fatal("Invoke must not be called for a null argument")
			return nil, nil
		},
	})

	expr := ast.NewFunctionCall("upper", ast.NewNullLiteral())
	e := NewEvaluator(ModeInterpret, nil, nil, reg)
	v, err := e.Eval(newTestCtx(), expr)
	require.NoError(t, err)
	require.Equal(t, value.Null{}, v)
}

func TestFunctionCallResolvesOverloadByArgType(t *testing.T) {
	reg := resolver.NewStaticRegistry(
		&resolver.FunctionDescriptor{
			Name:          "widen",
			ArgTypes:      []resolver.ValueType{resolver.BigInt},
			Deterministic: true,
			Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
				return value.Bytes("int"), nil
			},
		},
		&resolver.FunctionDescriptor{
			Name:          "widen",
			ArgTypes:      []resolver.ValueType{resolver.Varchar},
			Deterministic: true,
			Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
				return value.Bytes("string"), nil
			},
		},
	)

	e := NewEvaluator(ModeInterpret, nil, nil, reg)
	v, err := e.Eval(newTestCtx(), ast.NewFunctionCall("widen", ast.NewLongLiteral(5)))
	require.NoError(t, err)
	require.Equal(t, value.Bytes("int"), v)

	v, err = e.Eval(newTestCtx(), ast.NewFunctionCall("widen", ast.NewStringLiteral([]byte("x"))))
	require.NoError(t, err)
	require.Equal(t, value.Bytes("string"), v)
}

func TestFunctionCallBindsSessionToInvoke(t *testing.T) {
	var seen *session.Context
	reg := resolver.NewStaticRegistry(&resolver.FunctionDescriptor{
		Name:          "now_marker",
		ArgTypes:      []resolver.ValueType{},
		SessionArg:    true,
		Deterministic: false,
		Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
			seen = ctx
			return value.Bool(true), nil
		},
	})

	e := NewEvaluator(ModeInterpret, nil, nil, reg)
	ctx := newTestCtx()
	v, err := e.Eval(ctx, ast.NewFunctionCall("now_marker"))
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), v)
	require.Same(t, ctx.Session, seen.Session)
}

func TestFunctionCallNonDeterministicResidualizesInOptimizeMode(t *testing.T) {
	reg := resolver.NewStaticRegistry(&resolver.FunctionDescriptor{
		Name:          "rand",
		ArgTypes:      []resolver.ValueType{},
		Deterministic: false,
		Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
			t.Fatal("Invoke must not be called for a non-deterministic function in optimize mode")
			return nil, nil
		},
	})

	e := NewEvaluator(ModeOptimize, nil, nil, reg)
	v, err := e.Eval(newTestCtx(), ast.NewFunctionCall("rand"))
	require.NoError(t, err)
	require.True(t, value.IsResidual(v))
}

func TestFunctionCallUnknownOverloadIsUnsupported(t *testing.T) {
	reg := resolver.NewStaticRegistry(&resolver.FunctionDescriptor{
		Name:     "concat",
		ArgTypes: []resolver.ValueType{resolver.Varchar, resolver.Varchar},
	})

	e := NewEvaluator(ModeInterpret, nil, nil, reg)
	_, err := e.Eval(newTestCtx(), ast.NewFunctionCall("concat", ast.NewStringLiteral([]byte("a"))))
	require.Error(t, err)
}
