package scalarlib

import "github.com/relacore/sqleval/value"

// WidenNumeric implements the arithmetic widening rule: two int64
// operands stay int64; any other combination of numeric operands
// widens both to float64. ok is false if either operand is not
// numeric.
func WidenNumeric(a, b value.Value) (af, bf float64, bothInt bool, ok bool) {
	ai, aIsInt := a.(value.Int64)
	bi, bIsInt := b.(value.Int64)
	if aIsInt && bIsInt {
		return float64(ai), float64(bi), true, true
	}

	av, aOK := numericFloat(a)
	bv, bOK := numericFloat(b)
	if !aOK || !bOK {
		return 0, 0, false, false
	}
	return av, bv, false, true
}

func numericFloat(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case value.Int64:
		return float64(x), true
	case value.Float64:
		return float64(x), true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is an Int64 or Float64.
func IsNumeric(v value.Value) bool {
	switch v.(type) {
	case value.Int64, value.Float64:
		return true
	default:
		return false
	}
}
