package eval

import (
	"math"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/value"
)

func (e *Evaluator) evalLiteral(lit *ast.Literal) (value.Value, error) {
	switch lit.Kind {
	case ast.LiteralLong, ast.LiteralDate, ast.LiteralTime, ast.LiteralTimestamp:
		return value.Int64(lit.Long), nil
	case ast.LiteralDouble:
		return value.Float64(lit.Double), nil
	case ast.LiteralString:
		return value.Bytes(lit.Str), nil
	case ast.LiteralBoolean:
		return value.Bool(lit.Bool), nil
	case ast.LiteralNull:
		return value.Null{}, nil
	case ast.LiteralInterval:
		if lit.IntervalIsYearMonth {
			return nil, errYearMonthInterval()
		}
		return value.Int64(lit.Long), nil
	default:
		return nil, errUnsupported("unknown literal kind")
	}
}

// reconstruct is the Literal Reconstructor: the inverse of
// evalLiteral. It turns a concrete scalar back into a well-formed
// ast.Literal so that a partially-folded residual expression can
// carry already-known children as ordinary AST nodes rather than as
// some evaluator-private wrapper the rest of the planner wouldn't
// recognize. NaN and the two infinities have no float literal
// syntax, so they are reconstructed as calls to the zero-argument
// functions nan()/infinity() the way the source's literal writer does.
func reconstruct(v value.Value) ast.Expr {
	switch x := v.(type) {
	case value.Int64:
		return ast.NewLongLiteral(int64(x))
	case value.Float64:
		f := float64(x)
		switch {
		case math.IsNaN(f):
			return ast.NewFunctionCall("nan")
		case math.IsInf(f, 1):
			return ast.NewFunctionCall("infinity")
		case math.IsInf(f, -1):
			return ast.NewNegative(ast.NewFunctionCall("infinity"))
		default:
			return ast.NewDoubleLiteral(f)
		}
	case value.Bool:
		return ast.NewBooleanLiteral(bool(x))
	case value.Bytes:
		return ast.NewStringLiteral(x)
	case value.Null:
		return ast.NewNullLiteral()
	case value.Residual:
		return x.Expr
	default:
		return ast.NewNullLiteral()
	}
}
