package ast

// ExtractField enumerates the fields EXTRACT accepts. DAY_OF_MONTH,
// DOW, and DOY are aliases assigned to the same value as their
// canonical counterpart so that equality comparisons work regardless
// of which spelling the analyzer used.
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

const (
	FieldDayOfMonth = FieldDay
	FieldDOW        = FieldDayOfWeek
	FieldDOY        = FieldDayOfYear
)

// Extract is EXTRACT(field FROM operand); Operand must evaluate to a
// datetime scalar (int64 seconds).
type Extract struct {
	Field   ExtractField
	Operand Expr
}

func (*Extract) isExpr() {}

func NewExtract(field ExtractField, operand Expr) *Extract {
	return &Extract{Field: field, Operand: operand}
}
