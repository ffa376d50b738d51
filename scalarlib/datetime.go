package scalarlib

import (
	stdtime "time"

	"github.com/SnellerInc/sneller/date"
)

// FromUnixSeconds builds a date.Time from the int64-seconds-since-epoch
// representation the evaluator's runtime scalars use for all datetime
// literals (DATE, TIME, TIMESTAMP alike).
func FromUnixSeconds(sec int64) date.Time {
	return date.Unix(sec, 0)
}

// ToUnixSeconds is the inverse of FromUnixSeconds.
func ToUnixSeconds(t date.Time) int64 {
	return t.Unix()
}

// ExtractField enumerates the calendar/clock fields EXTRACT computes.
// Duplicated here (rather than importing ast) to keep scalarlib free
// of a dependency on the AST package; eval maps ast.ExtractField to
// this local enum at the call site.
type ExtractField int

const (
	FieldCentury ExtractField = iota
	FieldYear
	FieldQuarter
	FieldMonth
	FieldWeek
	FieldDay
	FieldDayOfWeek
	FieldDayOfYear
	FieldHour
	FieldMinute
	FieldSecond
	FieldTimezoneHour
	FieldTimezoneMinute
)

// Extract computes field from t. date.Time exposes only the basic
// Year/Month/Day/Hour/Minute/Second accessors: century and quarter are
// computed from Year and Month, and week-of-year, day-of-week, and
// day-of-year are derived by bridging to the standard library's
// time.Time via date.Time.Time(), which is UTC-normalized the same way
// date.Time itself is.
func Extract(field ExtractField, t date.Time) (int64, error) {
	switch field {
	case FieldYear:
		return int64(t.Year()), nil
	case FieldMonth:
		return int64(t.Month()), nil
	case FieldDay:
		return int64(t.Day()), nil
	case FieldHour:
		return int64(t.Hour()), nil
	case FieldMinute:
		return int64(t.Minute()), nil
	case FieldSecond:
		return int64(t.Second()), nil
	case FieldCentury:
		return int64(t.Year()-1)/100 + 1, nil
	case FieldQuarter:
		return int64((t.Month()-1)/3 + 1), nil
	case FieldWeek:
		_, wk := t.Time().ISOWeek()
		return int64(wk), nil
	case FieldDayOfWeek:
		// time.Weekday numbering: Sunday=0..Saturday=6.
		return int64(t.Time().Weekday()), nil
	case FieldDayOfYear:
		return int64(t.Time().YearDay()), nil
	case FieldTimezoneHour, FieldTimezoneMinute:
		// date.Time is always normalized to UTC; there is no offset
		// to report, so the timezone fields are always zero.
		return 0, nil
	default:
		return 0, errUnknownField(field)
	}
}

type unknownFieldError struct{ field ExtractField }

func (e unknownFieldError) Error() string {
	return "scalarlib: unknown EXTRACT field"
}

func errUnknownField(f ExtractField) error { return unknownFieldError{field: f} }

// Now returns the current instant truncated to whole seconds, matching
// the int64-seconds representation datetime literals use.
func Now() date.Time {
	return date.FromTime(stdtime.Now())
}
