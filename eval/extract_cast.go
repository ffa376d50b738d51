package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/scalarlib"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

var extractFieldMap = map[ast.ExtractField]scalarlib.ExtractField{
	ast.FieldCentury:        scalarlib.FieldCentury,
	ast.FieldYear:           scalarlib.FieldYear,
	ast.FieldQuarter:        scalarlib.FieldQuarter,
	ast.FieldMonth:          scalarlib.FieldMonth,
	ast.FieldWeek:           scalarlib.FieldWeek,
	ast.FieldDay:            scalarlib.FieldDay,
	ast.FieldDayOfWeek:      scalarlib.FieldDayOfWeek,
	ast.FieldDayOfYear:      scalarlib.FieldDayOfYear,
	ast.FieldHour:           scalarlib.FieldHour,
	ast.FieldMinute:         scalarlib.FieldMinute,
	ast.FieldSecond:         scalarlib.FieldSecond,
	ast.FieldTimezoneHour:   scalarlib.FieldTimezoneHour,
	ast.FieldTimezoneMinute: scalarlib.FieldTimezoneMinute,
}

func (e *Evaluator) evalExtract(ctx *session.Context, n *ast.Extract) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewExtract(n.Field, r.Expr)), nil
	}
	if _, isNull := v.(value.Null); isNull {
		return value.Null{}, nil
	}

	sec, ok := v.(value.Int64)
	if !ok {
		return nil, errTypeMismatch("EXTRACT expects a datetime operand, got %T", v)
	}

	field, ok := extractFieldMap[n.Field]
	if !ok {
		return nil, evalerr.ErrUnknownExtractField.New(n.Field)
	}

	t := scalarlib.FromUnixSeconds(int64(sec))
	result, err := scalarlib.Extract(field, t)
	if err != nil {
		return nil, errScalarFailure("%v", err)
	}
	return value.Int64(result), nil
}

func (e *Evaluator) evalCast(ctx *session.Context, n *ast.Cast) (value.Value, error) {
	v, err := e.Eval(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(value.Residual); ok {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(&ast.Cast{Operand: r.Expr, TargetType: n.TargetType, Try: n.Try}), nil
	}

	target, ok := scalarlib.ParseTargetType(n.TargetType)
	if !ok {
		return nil, evalerr.ErrUnknownCastTarget.New(n.TargetType)
	}

	result, err := scalarlib.Cast(v, target)
	if err != nil {
		if n.Try {
			return value.Null{}, nil
		}
		return nil, errScalarFailure("%v", err)
	}
	return result, nil
}
