package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalSearchedCase evaluates WHEN clauses in order, returning the
// result of the first clause whose condition is concretely true. A
// null condition is treated as not-taken and evaluation proceeds to
// the next WHEN. A residual condition forces the whole CASE to be
// returned unreduced — per §4.1, any deeper optimization here (e.g.
// dropping already-resolved-false leading WHENs) is future work, not
// this evaluator's job, mirroring the original's "// TODO: optimize
// this case" / return node unchanged.
func (e *Evaluator) evalSearchedCase(ctx *session.Context, n *ast.SearchedCase) (value.Value, error) {
	for _, when := range n.Whens {
		cv, err := e.Eval(ctx, when.Cond)
		if err != nil {
			return nil, err
		}
		if _, ok := cv.(value.Residual); ok {
			if e.Mode == ModeInterpret {
				return nil, errTypeMismatch("unresolved residual encountered during interpretation")
			}
			return residual(n), nil
		}
		if b, ok := cv.(value.Bool); ok && bool(b) {
			return e.Eval(ctx, when.Result)
		}
	}
	if n.Else != nil {
		return e.Eval(ctx, n.Else)
	}
	return value.Null{}, nil
}

// evalSimpleCase evaluates operand once, then compares it against each
// WHEN match in order. Per §4.1, a residual operand or a residual
// match value forces the whole CASE to be returned unreduced, the
// same conservative rule evalSearchedCase applies to a residual
// condition — this evaluator does no deeper algebraic rewriting of a
// partially-resolved CASE.
func (e *Evaluator) evalSimpleCase(ctx *session.Context, n *ast.SimpleCase) (value.Value, error) {
	ov, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	if _, ok := ov.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(n), nil
	}
	if _, isNull := ov.(value.Null); isNull {
		if n.Else != nil {
			return e.Eval(ctx, n.Else)
		}
		return value.Null{}, nil
	}

	for _, when := range n.Whens {
		mv, err := e.Eval(ctx, when.Match)
		if err != nil {
			return nil, err
		}
		if _, ok := mv.(value.Residual); ok {
			if e.Mode == ModeInterpret {
				return nil, errTypeMismatch("unresolved residual encountered during interpretation")
			}
			return residual(n), nil
		}
		if _, isNull := mv.(value.Null); isNull {
			continue
		}
		if !sameTypeClass(ov, mv) {
			return nil, errTypeMismatch("CASE operand %T not comparable to WHEN value %T", ov, mv)
		}
		eq, err := valuesEqual(ov, mv)
		if err != nil {
			return nil, err
		}
		if eq {
			return e.Eval(ctx, when.Result)
		}
	}
	if n.Else != nil {
		return e.Eval(ctx, n.Else)
	}
	return value.Null{}, nil
}
