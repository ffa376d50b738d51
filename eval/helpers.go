package eval

import (
	"bytes"
	"fmt"

	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/value"
)

func errUnsupported(what string) error {
	return evalerr.ErrUnsupportedConstruct.New(what)
}

func errYearMonthInterval() error {
	return evalerr.ErrYearMonthInterval.New()
}

func errTypeMismatch(format string, args ...interface{}) error {
	return evalerr.ErrTypeMismatch.New(fmt.Sprintf(format, args...))
}

func errUnhandledCombo(op string, a, b value.Value) error {
	return evalerr.ErrUnhandledCombo.New(fmt.Sprintf("%s(%T, %T)", op, a, b))
}

// typeClass buckets a value.Value into the coarse class the spec's
// comparison rules dispatch on: numeric, string, boolean. Null and
// Residual are handled by callers before typeClass is consulted.
type typeClass int

const (
	classNumeric typeClass = iota
	classString
	classBoolean
	classOther
)

func classOf(v value.Value) typeClass {
	switch v.(type) {
	case value.Int64, value.Float64:
		return classNumeric
	case value.Bytes:
		return classString
	case value.Bool:
		return classBoolean
	default:
		return classOther
	}
}

// sameTypeClass reports whether a and b belong to the same coarse
// class and are therefore eligible for direct comparison.
func sameTypeClass(a, b value.Value) bool {
	return classOf(a) == classOf(b) && classOf(a) != classOther
}

// valuesEqual implements SQL equality for two concrete, same-class
// scalars. Numeric comparison widens per the arithmetic widening rule.
func valuesEqual(a, b value.Value) (bool, error) {
	switch classOf(a) {
	case classNumeric:
		if ai, bi, ok := bothInt64(a, b); ok {
			return ai == bi, nil
		}
		af, bf, _, ok := widenPair(a, b)
		if !ok {
			return false, errUnhandledCombo("=", a, b)
		}
		return af == bf, nil
	case classString:
		return bytes.Equal([]byte(a.(value.Bytes)), []byte(b.(value.Bytes))), nil
	case classBoolean:
		return bool(a.(value.Bool)) == bool(b.(value.Bool)), nil
	default:
		return false, errUnhandledCombo("=", a, b)
	}
}

// compareOrdered implements SQL ordering comparison, returning -1, 0,
// or 1. Only numeric and string classes are ordered; boolean and
// mixed-class comparisons are the caller's responsibility to reject.
func compareOrdered(a, b value.Value) (int, error) {
	switch classOf(a) {
	case classNumeric:
		if ai, bi, ok := bothInt64(a, b); ok {
			switch {
			case ai < bi:
				return -1, nil
			case ai > bi:
				return 1, nil
			default:
				return 0, nil
			}
		}
		af, bf, _, ok := widenPair(a, b)
		if !ok {
			return 0, errUnhandledCombo("compare", a, b)
		}
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	case classString:
		return bytes.Compare([]byte(a.(value.Bytes)), []byte(b.(value.Bytes))), nil
	default:
		return 0, errUnhandledCombo("compare", a, b)
	}
}

// bothInt64 reports whether a and b are both Int64, returning their
// exact values without a float64 round-trip. Two int64 operands must
// compare exactly per the widening rule (both int64: integer compare);
// going through float64 loses precision beyond 2^53 and can make two
// distinct large int64s compare equal.
func bothInt64(a, b value.Value) (ai, bi int64, ok bool) {
	av, aIsInt := a.(value.Int64)
	bv, bIsInt := b.(value.Int64)
	if !aIsInt || !bIsInt {
		return 0, 0, false
	}
	return int64(av), int64(bv), true
}

func widenPair(a, b value.Value) (af, bf float64, bothInt bool, ok bool) {
	ai, aIsInt := a.(value.Int64)
	bi, bIsInt := b.(value.Int64)
	if aIsInt && bIsInt {
		return float64(ai), float64(bi), true, true
	}
	av, aOK := asFloat(a)
	bv, bOK := asFloat(b)
	if !aOK || !bOK {
		return 0, 0, false, false
	}
	return av, bv, false, true
}

func asFloat(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case value.Int64:
		return float64(x), true
	case value.Float64:
		return float64(x), true
	default:
		return 0, false
	}
}

// truthy extracts a Go bool from a value.Bool scalar produced by a
// boolean-typed subexpression. Callers must have already excluded
// null and residual.
func truthy(v value.Value) (bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, errTypeMismatch("expected BOOLEAN, got %T", v)
	}
	return bool(b), nil
}
