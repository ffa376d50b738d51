// Package evalerr defines the structured error catalogue raised by the
// evaluator core. Every raised error belongs to exactly one of the
// three kinds the evaluator's contract promises: an unsupported
// construct, a type mismatch or unhandled combination, or a scalar
// (function/cast/regex) failure. Errors are never returned as bare
// fmt.Errorf strings so callers can dispatch on kind with errors.Is.
package evalerr

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupportedConstruct is raised when the evaluator is asked to
	// handle an AST shape it deliberately does not support, e.g. a
	// window FunctionCall.
	ErrUnsupportedConstruct = errors.NewKind("unsupported construct: %s")

	// ErrYearMonthInterval is raised on an interval literal flagged as
	// year-month typed; the evaluator only carries day-time intervals.
	ErrYearMonthInterval = errors.NewKind("year-month intervals are not supported")

	// ErrUnknownExtractField is raised when an ExtractField carries a
	// value outside the enumerated set.
	ErrUnknownExtractField = errors.NewKind("unknown EXTRACT field: %v")

	// ErrUnknownCastTarget is raised when a Cast names a target type
	// the registry does not recognize.
	ErrUnknownCastTarget = errors.NewKind("unknown CAST target type: %s")

	// ErrUnresolvedSymbol is raised in Interpretation mode when a
	// QualifiedNameReference cannot be resolved to a concrete value;
	// Interpretation mode's contract forbids returning a Residual, so
	// an unresolved symbol there is an error rather than a fold.
	ErrUnresolvedSymbol = errors.NewKind("unresolved symbol: %s")

	// ErrTypeMismatch is raised when operand types are incompatible in
	// a way the evaluator cannot fold or residualize, e.g. IS DISTINCT
	// FROM across incomparable type classes.
	ErrTypeMismatch = errors.NewKind("type mismatch: %s")

	// ErrUnhandledCombo is raised when two concrete, individually valid
	// operand types have no defined combination rule for the operator
	// in question.
	ErrUnhandledCombo = errors.NewKind("unhandled type combination: %s")

	// ErrScalarFailure wraps a failure raised by a called function,
	// cast, or LIKE pattern compilation.
	ErrScalarFailure = errors.NewKind("scalar evaluation failed: %s")

	// ErrInvalidInOperand is raised in Interpretation mode when In.List
	// is present but not an *ast.InList (subquery lists are a Non-goal).
	ErrInvalidInOperand = errors.NewKind("IN operand is not a literal list: %s")

	// ErrCurrentTimePrecision is raised when a CurrentTime node
	// requests a precision the session clock cannot honor.
	ErrCurrentTimePrecision = errors.NewKind("unsupported CURRENT_TIME precision: %d")

	allKinds = []*errors.Kind{
		ErrUnsupportedConstruct,
		ErrYearMonthInterval,
		ErrUnknownExtractField,
		ErrUnknownCastTarget,
		ErrUnresolvedSymbol,
		ErrTypeMismatch,
		ErrUnhandledCombo,
		ErrScalarFailure,
		ErrInvalidInOperand,
		ErrCurrentTimePrecision,
	}
)

// IsKnownKind reports whether err already belongs to one of this
// package's Kinds, mirroring the original's
// Throwables.propagateIfInstanceOf(..., RuntimeException.class) pass-
// through: a caller-raised error that is already runtime-class must
// not be wrapped again, or its identity is lost to errors.Is.
func IsKnownKind(err error) bool {
	for _, k := range allKinds {
		if k.Is(err) {
			return true
		}
	}
	return false
}
