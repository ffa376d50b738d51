// Package value defines the runtime scalar tag the evaluator core
// produces and consumes. The tagged set is closed at exactly six
// alternatives; no other runtime type may flow through the evaluator.
package value

import "github.com/relacore/sqleval/ast"

// Value is the sealed interface implemented by the six runtime scalar
// alternatives.
type Value interface {
	isValue()
}

// Int64 is a signed 64-bit integer scalar.
type Int64 int64

func (Int64) isValue() {}

// Float64 is an IEEE-754 double scalar.
type Float64 float64

func (Float64) isValue() {}

// Bool is a boolean scalar.
type Bool bool

func (Bool) isValue() {}

// Bytes is a UTF-8 byte-string scalar.
type Bytes []byte

func (Bytes) isValue() {}

// Null is the SQL null value.
type Null struct{}

func (Null) isValue() {}

// Residual carries a partially-reduced expression when a subterm could
// not be collapsed to a scalar. It is the partial-evaluation escape
// hatch described by the evaluator's contract.
type Residual struct {
	Expr ast.Expr
}

func (Residual) isValue() {}

// IsNull reports whether v is the concrete null value. A Residual is
// not null even if its wrapped expression might evaluate to null at
// runtime — that fact is unknown until the residual is resolved.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// IsResidual reports whether v carries an unresolved expression.
func IsResidual(v Value) bool {
	_, ok := v.(Residual)
	return ok
}
