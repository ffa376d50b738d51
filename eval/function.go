package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/resolver"
	"github.com/relacore/sqleval/scalarlib"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalFunctionCall dispatches a scalar function invocation through
// e.Registry. Window functions are rejected as unsupported (they
// belong to the query executor). Per spec §4.1: arguments are
// collected first, and if any is null the whole call is null — every
// scalar function here is strict in nulls, and this check runs before
// residual propagation and before the descriptor is even resolved,
// since a null argument makes the argument-type-based resolve() moot.
// Determinism is consulted from the resolved descriptor rather than
// hardcoded: a non-deterministic function's arguments may still fold,
// but the call itself never does — it always residualizes in
// ModeOptimize (or, in ModeInterpret, is simply invoked, since
// Interpretation always calls through to a live value anyway).
func (e *Evaluator) evalFunctionCall(ctx *session.Context, n *ast.FunctionCall) (value.Value, error) {
	if n.Window {
		return nil, errUnsupported("window function calls are not supported")
	}
	if e.Registry == nil {
		return nil, errUnsupported("no function registry configured")
	}

	args := make([]value.Value, len(n.Args))
	argExprs := make([]ast.Expr, len(n.Args))
	anyResidual := false
	anyNull := false
	for i, a := range n.Args {
		v, err := e.Eval(ctx, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
		switch v.(type) {
		case value.Residual:
			anyResidual = true
		case value.Null:
			anyNull = true
		}
		argExprs[i] = exprOf(v, a)
	}

	if anyNull {
		return value.Null{}, nil
	}

	if anyResidual {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewFunctionCall(n.Name, argExprs...)), nil
	}

	argTypes := make([]resolver.ValueType, len(args))
	for i, v := range args {
		t, ok := valueType(v)
		if !ok {
			return nil, errTypeMismatch("function argument %d has no scalar value type: %T", i, v)
		}
		argTypes[i] = t
	}

	fn, ok := e.Registry.LookupFunction(n.Name, argTypes)
	if !ok {
		return nil, errUnsupported("unknown function: " + n.Name)
	}

	if e.Mode == ModeOptimize && !fn.Deterministic {
		ctx.Logger().Debugf("eval: leaving %s residual, registry marks it non-deterministic", n.Name)
		return residual(ast.NewFunctionCall(n.Name, argExprs...)), nil
	}

	// A numeric argument matched across BigInt/Double is cast to the formal type.
	for i, formal := range fn.ArgTypes {
		if formal == argTypes[i] || (formal != resolver.BigInt && formal != resolver.Double) {
			continue
		}
		target := scalarlib.TargetDouble
		if formal == resolver.BigInt {
			target = scalarlib.TargetBigInt
		}
		coerced, err := scalarlib.Cast(args[i], target)
		if err != nil {
			return nil, errScalarFailure("function %s argument %d: %v", n.Name, i, err)
		}
		args[i] = coerced
	}

	result, err := fn.Invoke(ctx, args)
	if err != nil {
		ctx.Logger().Warnf("eval: function %s failed: %v", n.Name, err)
		if evalerr.IsKnownKind(err) {
			return nil, err
		}
		return nil, errScalarFailure("function %s: %v", n.Name, err)
	}
	return result, nil
}

// valueType derives a resolver.ValueType from a concrete scalar's
// runtime tag, per §4.1's argument-typing rule
// (int64->BIGINT, f64->DOUBLE, bytes->VARCHAR, bool->BOOLEAN).
func valueType(v value.Value) (resolver.ValueType, bool) {
	switch v.(type) {
	case value.Int64:
		return resolver.BigInt, true
	case value.Float64:
		return resolver.Double, true
	case value.Bytes:
		return resolver.Varchar, true
	case value.Bool:
		return resolver.Boolean, true
	default:
		return 0, false
	}
}
