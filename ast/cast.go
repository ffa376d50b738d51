package ast

// Cast converts Operand to TargetType (one of BOOLEAN, VARCHAR,
// DOUBLE, BIGINT, DATE, TIME, TIMESTAMP, or an alias of one of them
// that scalarlib.ParseTargetType accepts; any other name is an error).
// Try marks a TRY_CAST, which yields null instead of raising when the
// conversion fails.
type Cast struct {
	Operand    Expr
	TargetType string
	Try        bool
}

func (*Cast) isExpr() {}

func NewCast(operand Expr, targetType string) *Cast {
	return &Cast{Operand: operand, TargetType: targetType}
}

func NewTryCast(operand Expr, targetType string) *Cast {
	return &Cast{Operand: operand, TargetType: targetType, Try: true}
}
