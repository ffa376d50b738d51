package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

func TestStaticRegistryLookupIsCaseInsensitive(t *testing.T) {
	reg := NewStaticRegistry(&FunctionDescriptor{
		Name:          "Upper",
		ArgTypes:      []ValueType{Varchar},
		Deterministic: true,
		Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
			return args[0], nil
		},
	})

	fn, ok := reg.LookupFunction("upper", []ValueType{Varchar})
	require.True(t, ok)
	require.True(t, fn.Deterministic)

	_, ok = reg.LookupFunction("missing", []ValueType{Varchar})
	require.False(t, ok)
}

func TestStaticRegistryOverloadsByArgType(t *testing.T) {
	reg := NewStaticRegistry(
		&FunctionDescriptor{
			Name:     "abs",
			ArgTypes: []ValueType{BigInt},
			Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
				return value.Int64(1), nil
			},
		},
		&FunctionDescriptor{
			Name:     "abs",
			ArgTypes: []ValueType{Varchar},
			Invoke: func(ctx *session.Context, args []value.Value) (value.Value, error) {
				return value.Int64(2), nil
			},
		},
	)

	fn, ok := reg.LookupFunction("abs", []ValueType{Double})
	require.True(t, ok, "numeric argument types should be compatible across BigInt/Double")
	result, err := fn.Invoke(nil, nil)
	require.NoError(t, err)
	require.Equal(t, value.Int64(1), result)

	_, ok = reg.LookupFunction("abs", []ValueType{Boolean})
	require.False(t, ok, "boolean is not compatible with any registered overload")
}

func TestStaticRegistryArityMismatchFails(t *testing.T) {
	reg := NewStaticRegistry(&FunctionDescriptor{
		Name:     "concat",
		ArgTypes: []ValueType{Varchar, Varchar},
	})

	_, ok := reg.LookupFunction("concat", []ValueType{Varchar})
	require.False(t, ok)
}
