package eval

import (
	"math"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalArithmetic implements ADD/SUB/MUL/DIV/MOD with the widening
// rule: two int64 operands stay int64, any other numeric combination
// widens both to float64. Division and modulo by zero return null
// rather than raising, grounded on the teacher's div/intDiv/mod
// helpers in sql/expression/arithmetic.go, which return sql.Null on a
// zero divisor instead of an error.
func (e *Evaluator) evalArithmetic(ctx *session.Context, n *ast.Arithmetic) (value.Value, error) {
	lv, err := e.Eval(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	rv, err := e.Eval(ctx, n.Right)
	if err != nil {
		return nil, err
	}

	if res, ok, err := foldOrResidualBinary(e, lv, rv, n.Left, n.Right, func(l, r ast.Expr) ast.Expr {
		return ast.NewArithmetic(n.Op, l, r)
	}); ok {
		return res, err
	}

	if !isNumeric(lv) || !isNumeric(rv) {
		return nil, errTypeMismatch("arithmetic expects numeric operands, got %T and %T", lv, rv)
	}

	li, lIsInt := lv.(value.Int64)
	ri, rIsInt := rv.(value.Int64)
	if lIsInt && rIsInt {
		return evalIntArith(n.Op, int64(li), int64(ri))
	}

	lf, _ := asFloat(lv)
	rf, _ := asFloat(rv)
	return evalFloatArith(n.Op, lf, rf)
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case value.Int64, value.Float64:
		return true
	default:
		return false
	}
}

func evalIntArith(op ast.ArithOp, l, r int64) (value.Value, error) {
	switch op {
	case ast.ArithAdd:
		return value.Int64(l + r), nil
	case ast.ArithSub:
		return value.Int64(l - r), nil
	case ast.ArithMul:
		return value.Int64(l * r), nil
	case ast.ArithDiv:
		if r == 0 {
			return value.Null{}, nil
		}
		return value.Int64(l / r), nil
	case ast.ArithMod:
		if r == 0 {
			return value.Null{}, nil
		}
		return value.Int64(l % r), nil
	default:
		return nil, errUnsupported("unknown arithmetic operator")
	}
}

func evalFloatArith(op ast.ArithOp, l, r float64) (value.Value, error) {
	switch op {
	case ast.ArithAdd:
		return value.Float64(l + r), nil
	case ast.ArithSub:
		return value.Float64(l - r), nil
	case ast.ArithMul:
		return value.Float64(l * r), nil
	case ast.ArithDiv:
		if r == 0 {
			return value.Null{}, nil
		}
		return value.Float64(l / r), nil
	case ast.ArithMod:
		if r == 0 {
			return value.Null{}, nil
		}
		return value.Float64(math.Mod(l, r)), nil
	default:
		return nil, errUnsupported("unknown arithmetic operator")
	}
}

func (e *Evaluator) evalNegative(ctx *session.Context, n *ast.Negative) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Int64:
		return value.Int64(-int64(x)), nil
	case value.Float64:
		return value.Float64(-float64(x)), nil
	case value.Null:
		return value.Null{}, nil
	case value.Residual:
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewNegative(x.Expr)), nil
	default:
		return nil, errTypeMismatch("negation expects a numeric operand, got %T", v)
	}
}
