package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

// foldOrResidualBinary is the Residual Rewriter's shared entry point
// for strict binary operators (arithmetic, comparison, between, like,
// nullif): operators where a null or residual operand propagates to
// the whole expression, with no short-circuiting the way
// AND/OR/COALESCE have (NULLIF's caller turns a null result back into
// its first operand). Null is checked before residual, so a
// concrete null operand always wins over a residual sibling — the
// operator returns null if any operand is null before any other
// reasoning runs. ok is true when the caller should return (v, err)
// immediately without proceeding to concrete-type dispatch.
func foldOrResidualBinary(e *Evaluator, lv, rv value.Value, leftExpr, rightExpr ast.Expr, rebuild func(l, r ast.Expr) ast.Expr) (v value.Value, ok bool, err error) {
	_, lNull := lv.(value.Null)
	_, rNull := rv.(value.Null)
	if lNull || rNull {
		return value.Null{}, true, nil
	}

	_, lResidual := lv.(value.Residual)
	_, rResidual := rv.(value.Residual)
	if lResidual || rResidual {
		if e.Mode == ModeInterpret {
			return nil, true, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(rebuild(exprOf(lv, leftExpr), exprOf(rv, rightExpr))), true, nil
	}

	return nil, false, nil
}
