package eval

import (
	"fmt"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalCoalesce returns the first non-null argument, evaluating
// arguments left to right and stopping as soon as one is non-null —
// per §8, COALESCE(null, null, 'x', error_expr) must not evaluate
// error_expr.
func (e *Evaluator) evalCoalesce(ctx *session.Context, n *ast.Coalesce) (value.Value, error) {
	remaining := make([]ast.Expr, 0, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.Eval(ctx, arg)
		if err != nil {
			return nil, err
		}
		if r, ok := v.(value.Residual); ok {
			if e.Mode == ModeInterpret {
				return nil, errTypeMismatch("unresolved residual encountered during interpretation")
			}
			remaining = append(remaining, r.Expr)
			remaining = append(remaining, n.Args[i+1:]...)
			return residual(ast.NewCoalesce(remaining...)), nil
		}
		if _, isNull := v.(value.Null); !isNull {
			return v, nil
		}
	}
	return value.Null{}, nil
}

// evalNullIf returns null if a equals b, else a. Per SQL semantics, a
// is evaluated exactly once.
func (e *Evaluator) evalNullIf(ctx *session.Context, n *ast.NullIf) (value.Value, error) {
	av, err := e.Eval(ctx, n.A)
	if err != nil {
		return nil, err
	}
	bv, err := e.Eval(ctx, n.B)
	if err != nil {
		return nil, err
	}

	if res, ok, err := foldOrResidualBinary(e, av, bv, n.A, n.B, func(l, r ast.Expr) ast.Expr {
		return ast.NewNullIf(l, r)
	}); ok {
		if _, isNull := res.(value.Null); isNull {
			return av, nil
		}
		return res, err
	}

	if !sameTypeClass(av, bv) {
		return av, nil
	}
	eq, err := valuesEqual(av, bv)
	if err != nil {
		return nil, err
	}
	if eq {
		return value.Null{}, nil
	}
	return av, nil
}

// evalIf implements IF(cond, then, else). Cond is evaluated plainly:
// it is always needed for its value, so a failure there is a genuine
// evaluation failure and must propagate. When Cond is residual,
// Then/Else are only needed for their optimized *shape* in the
// rebuilt residual IF, not for a value — so each is optimized under
// the source's single sanctioned recover(), falling back to the
// original, unoptimized branch AST if optimizing it fails. This is the
// sole recover() in the evaluator core, at the same call site the
// source's optimize() helper uses it, per the design notes.
func (e *Evaluator) evalIf(ctx *session.Context, n *ast.If) (value.Value, error) {
	cv, err := e.Eval(ctx, n.Cond)
	if err != nil {
		return nil, err
	}

	if r, ok := cv.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		thenExpr := e.optimizeBranchRecovering(ctx, n.Then)
		var elseExpr ast.Expr
		if n.Else != nil {
			elseExpr = e.optimizeBranchRecovering(ctx, n.Else)
		}
		return residual(ast.NewIf(r.Expr, thenExpr, elseExpr)), nil
	}

	if _, isNull := cv.(value.Null); isNull {
		if n.Else != nil {
			return e.Eval(ctx, n.Else)
		}
		return value.Null{}, nil
	}

	b, err := truthy(cv)
	if err != nil {
		return nil, err
	}
	if b {
		return e.Eval(ctx, n.Then)
	}
	if n.Else != nil {
		return e.Eval(ctx, n.Else)
	}
	return value.Null{}, nil
}

// optimizeBranchRecovering evaluates branch purely to obtain its
// optimized AST shape (exprOf the result), recovering a panic from a
// misbehaving branch and falling back to the original, unoptimized
// branch on either a panic or an ordinary evaluation error — the
// branch is not being taken, so a failure optimizing it must not abort
// the whole residual IF.
func (e *Evaluator) optimizeBranchRecovering(ctx *session.Context, branch ast.Expr) (result ast.Expr) {
	result = branch
	defer func() {
		if r := recover(); r != nil {
			ctx.Logger().Warnf("eval: IF branch optimization panicked, falling back to unoptimized branch: %v", r)
			result = branch
		}
	}()
	v, err := e.Eval(ctx, branch)
	if err != nil {
		ctx.Logger().Debugf("eval: IF branch optimization failed (%v), falling back to unoptimized branch", err)
		return branch
	}
	return exprOf(v, branch)
}

func errScalarFailure(format string, args ...interface{}) error {
	return evalerr.ErrScalarFailure.New(fmt.Sprintf(format, args...))
}
