package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalComparison implements EQ/NE/LT/LE/GT/GE/IS_DISTINCT_FROM.
// IS_DISTINCT_FROM is null-safe (never returns null) and is handled
// before the general null-propagation check; the other six operators
// propagate null/residual per foldOrResidualBinary. A type-class
// mismatch between two concrete operands residualizes in ModeOptimize
// (per the source's behavior) but is a type mismatch error in
// ModeInterpret, since Interpretation's contract forbids leaking a
// Residual and a genuine mismatch there means an upstream analyzer
// bug, not a legitimately-unresolvable comparison.
func (e *Evaluator) evalComparison(ctx *session.Context, n *ast.Comparison) (value.Value, error) {
	lv, err := e.Eval(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	rv, err := e.Eval(ctx, n.Right)
	if err != nil {
		return nil, err
	}

	if n.Op == ast.OpIsDistinctFrom {
		return e.evalIsDistinctFrom(lv, rv, n, err)
	}

	if res, ok, err := foldOrResidualBinary(e, lv, rv, n.Left, n.Right, func(l, r ast.Expr) ast.Expr {
		return ast.NewComparison(n.Op, l, r)
	}); ok {
		return res, err
	}

	if !sameTypeClass(lv, rv) {
		if e.Mode == ModeOptimize {
			return residual(ast.NewComparison(n.Op, reconstruct(lv), reconstruct(rv))), nil
		}
		return nil, errTypeMismatch("comparison between %T and %T", lv, rv)
	}

	switch n.Op {
	case ast.OpEQ:
		eq, err := valuesEqual(lv, rv)
		return boolOrErr(eq, err)
	case ast.OpNE:
		eq, err := valuesEqual(lv, rv)
		return boolOrErr(!eq, err)
	case ast.OpLT:
		c, err := compareOrdered(lv, rv)
		return boolOrErr(c < 0, err)
	case ast.OpLE:
		c, err := compareOrdered(lv, rv)
		return boolOrErr(c <= 0, err)
	case ast.OpGT:
		c, err := compareOrdered(lv, rv)
		return boolOrErr(c > 0, err)
	case ast.OpGE:
		c, err := compareOrdered(lv, rv)
		return boolOrErr(c >= 0, err)
	default:
		return nil, errUnsupported("unknown comparison operator")
	}
}

func boolOrErr(b bool, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return value.Bool(b), nil
}

// evalIsDistinctFrom decided per Open Question #3: a mismatched type
// class between two concrete operands is treated as an internal error
// rather than silently folded or residualized, since IS DISTINCT FROM
// is meant to be a total, null-safe equality and a type mismatch there
// signals malformed input rather than an unresolved value.
func (e *Evaluator) evalIsDistinctFrom(lv, rv value.Value, n *ast.Comparison, _ error) (value.Value, error) {
	_, lResidual := lv.(value.Residual)
	_, rResidual := rv.(value.Residual)
	if lResidual || rResidual {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewComparison(ast.OpIsDistinctFrom, exprOf(lv, n.Left), exprOf(rv, n.Right))), nil
	}

	_, lNull := lv.(value.Null)
	_, rNull := rv.(value.Null)
	if lNull && rNull {
		return value.Bool(false), nil
	}
	if lNull != rNull {
		return value.Bool(true), nil
	}

	if !sameTypeClass(lv, rv) {
		return nil, errTypeMismatch("IS DISTINCT FROM between %T and %T", lv, rv)
	}

	eq, err := valuesEqual(lv, rv)
	if err != nil {
		return nil, err
	}
	return value.Bool(!eq), nil
}

// evalBetween implements BETWEEN as the conjunction value >= lo AND
// value <= hi, evaluating value exactly once and reusing the same
// null/residual propagation rule as any other comparison operand.
func (e *Evaluator) evalBetween(ctx *session.Context, n *ast.Between) (value.Value, error) {
	v, err := e.Eval(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	lo, err := e.Eval(ctx, n.Lo)
	if err != nil {
		return nil, err
	}
	hi, err := e.Eval(ctx, n.Hi)
	if err != nil {
		return nil, err
	}

	if value.IsNull(v) || value.IsNull(lo) || value.IsNull(hi) {
		return value.Null{}, nil
	}
	if res, ok, err := foldOrResidualBinary(e, v, lo, n.Value, n.Lo, func(l, r ast.Expr) ast.Expr {
		return ast.NewBetween(l, r, reconstruct(hi))
	}); ok {
		return res, err
	}
	if res, ok, err := foldOrResidualBinary(e, v, hi, n.Value, n.Hi, func(l, r ast.Expr) ast.Expr {
		return ast.NewBetween(l, reconstruct(lo), r)
	}); ok {
		return res, err
	}

	if !sameTypeClass(v, lo) || !sameTypeClass(v, hi) {
		if e.Mode == ModeOptimize {
			return residual(ast.NewBetween(reconstruct(v), reconstruct(lo), reconstruct(hi))), nil
		}
		return nil, errTypeMismatch("BETWEEN operands of differing type classes")
	}

	cLo, err := compareOrdered(v, lo)
	if err != nil {
		return nil, err
	}
	if cLo < 0 {
		return value.Bool(false), nil
	}
	cHi, err := compareOrdered(v, hi)
	if err != nil {
		return nil, err
	}
	return value.Bool(cHi <= 0), nil
}
