package scalarlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SnellerInc/sneller/date"
	"github.com/spf13/cast"

	"github.com/relacore/sqleval/value"
)

// TargetType is the closed set of CAST destinations the evaluator's
// registry recognizes. DATE/TIME/TIMESTAMP are a SPEC_FULL.md addition
// beyond the base scalar quartet, since a planner-level evaluator must
// be able to cast into and out of the same datetime literal shapes it
// accepts as input.
type TargetType int

const (
	TargetBigInt TargetType = iota
	TargetDouble
	TargetVarchar
	TargetBoolean
	TargetDate
	TargetTime
	TargetTimestamp
)

// ParseTargetType maps a registry type name (case-insensitive) to a
// TargetType. Ok is false for names the registry does not recognize.
func ParseTargetType(name string) (TargetType, bool) {
	switch strings.ToUpper(name) {
	case "BIGINT", "INT", "INTEGER", "LONG":
		return TargetBigInt, true
	case "DOUBLE", "FLOAT", "REAL":
		return TargetDouble, true
	case "VARCHAR", "STRING", "TEXT", "CHAR":
		return TargetVarchar, true
	case "BOOLEAN", "BOOL":
		return TargetBoolean, true
	case "DATE":
		return TargetDate, true
	case "TIME":
		return TargetTime, true
	case "TIMESTAMP":
		return TargetTimestamp, true
	default:
		return 0, false
	}
}

// Cast converts v to target. It uses spf13/cast for the numeric and
// string conversions the way a Go host would (rather than hand-rolled
// strconv chains), and SnellerInc/sneller/date for datetime parsing.
func Cast(v value.Value, target TargetType) (value.Value, error) {
	if _, isNull := v.(value.Null); isNull {
		return value.Null{}, nil
	}

	raw, err := rawOf(v)
	if err != nil {
		return nil, err
	}

	switch target {
	case TargetBigInt:
		i, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v to BIGINT: %w", raw, err)
		}
		return value.Int64(i), nil

	case TargetDouble:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v to DOUBLE: %w", raw, err)
		}
		return value.Float64(f), nil

	case TargetVarchar:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v to VARCHAR: %w", raw, err)
		}
		return value.Bytes(s), nil

	case TargetBoolean:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %v to BOOLEAN: %w", raw, err)
		}
		return value.Bool(b), nil

	case TargetDate, TargetTime, TargetTimestamp:
		sec, err := castToUnixSeconds(raw)
		if err != nil {
			return nil, err
		}
		return value.Int64(sec), nil

	default:
		return nil, fmt.Errorf("unknown cast target %v", target)
	}
}

// rawOf unwraps a Value into a plain Go value suitable for spf13/cast.
func rawOf(v value.Value) (interface{}, error) {
	switch x := v.(type) {
	case value.Int64:
		return int64(x), nil
	case value.Float64:
		return float64(x), nil
	case value.Bool:
		return bool(x), nil
	case value.Bytes:
		return string(x), nil
	default:
		return nil, fmt.Errorf("cannot cast value of type %T", v)
	}
}

func castToUnixSeconds(raw interface{}) (int64, error) {
	switch x := raw.(type) {
	case int64:
		return x, nil
	case float64:
		return int64(x), nil
	case string:
		t, ok := date.Parse([]byte(x))
		if ok {
			return t.Unix(), nil
		}
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as a datetime: %w", x, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot cast %v to a datetime", raw)
	}
}
