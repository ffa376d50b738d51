package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalLogical dispatches AND/OR as two separate, independent
// functions rather than a single fall-through switch, per the design
// notes' instruction to avoid mirroring the source's fall-through bug
// between the two operators.
func (e *Evaluator) evalLogical(ctx *session.Context, n *ast.Logical) (value.Value, error) {
	switch n.Op {
	case ast.OpAnd:
		return e.evalAnd(ctx, n.Left, n.Right)
	case ast.OpOr:
		return e.evalOr(ctx, n.Left, n.Right)
	default:
		return nil, errUnsupported("unknown logical operator")
	}
}

// evalAnd implements three-valued AND: false short-circuits regardless
// of the other operand (even if the other is null or residual);
// otherwise null/residual dominate over true.
func (e *Evaluator) evalAnd(ctx *session.Context, left, right ast.Expr) (value.Value, error) {
	lv, err := e.Eval(ctx, left)
	if err != nil {
		return nil, err
	}
	if b, ok := lv.(value.Bool); ok && !bool(b) {
		return value.Bool(false), nil
	}

	rv, err := e.Eval(ctx, right)
	if err != nil {
		return nil, err
	}
	if b, ok := rv.(value.Bool); ok && !bool(b) {
		return value.Bool(false), nil
	}

	return combineTernary(ctx, e, lv, rv, ast.OpAnd, left, right)
}

// evalOr implements three-valued OR: true short-circuits regardless of
// the other operand; otherwise null/residual dominate over false.
func (e *Evaluator) evalOr(ctx *session.Context, left, right ast.Expr) (value.Value, error) {
	lv, err := e.Eval(ctx, left)
	if err != nil {
		return nil, err
	}
	if b, ok := lv.(value.Bool); ok && bool(b) {
		return value.Bool(true), nil
	}

	rv, err := e.Eval(ctx, right)
	if err != nil {
		return nil, err
	}
	if b, ok := rv.(value.Bool); ok && bool(b) {
		return value.Bool(true), nil
	}

	return combineTernary(ctx, e, lv, rv, ast.OpOr, left, right)
}

// combineTernary handles the remaining cases once short-circuiting has
// been ruled out: both concrete non-short-circuiting booleans, one or
// both null, or one or both residual.
func combineTernary(ctx *session.Context, e *Evaluator, lv, rv value.Value, op ast.LogicalOp, leftExpr, rightExpr ast.Expr) (value.Value, error) {
	_, lResidual := lv.(value.Residual)
	_, rResidual := rv.(value.Residual)
	if lResidual || rResidual {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewLogical(op, exprOf(lv, leftExpr), exprOf(rv, rightExpr))), nil
	}

	_, lNull := lv.(value.Null)
	_, rNull := rv.(value.Null)
	if lNull || rNull {
		return value.Null{}, nil
	}

	lb, err := truthy(lv)
	if err != nil {
		return nil, err
	}
	rb, err := truthy(rv)
	if err != nil {
		return nil, err
	}
	switch op {
	case ast.OpAnd:
		return value.Bool(lb && rb), nil
	case ast.OpOr:
		return value.Bool(lb || rb), nil
	default:
		return nil, errUnsupported("unknown logical operator")
	}
}

// exprOf returns the AST expression to embed in a rebuilt residual
// node for a subterm that evaluated to v: the reconstructed literal if
// v is concrete, or the original unresolved sub-expression if v is
// itself a Residual.
func exprOf(v value.Value, original ast.Expr) ast.Expr {
	if r, ok := v.(value.Residual); ok {
		return r.Expr
	}
	return reconstruct(v)
}

func (e *Evaluator) evalNot(ctx *session.Context, n *ast.Not) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Bool:
		return value.Bool(!bool(x)), nil
	case value.Null:
		return value.Null{}, nil
	case value.Residual:
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewNot(x.Expr)), nil
	default:
		return nil, errTypeMismatch("NOT expects BOOLEAN, got %T", v)
	}
}

func (e *Evaluator) evalIsNull(ctx *session.Context, n *ast.IsNull) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewIsNull(r.Expr)), nil
	}
	_, isNull := v.(value.Null)
	return value.Bool(isNull), nil
}

func (e *Evaluator) evalIsNotNull(ctx *session.Context, n *ast.IsNotNull) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewIsNotNull(r.Expr)), nil
	}
	_, isNull := v.(value.Null)
	return value.Bool(!isNull), nil
}
