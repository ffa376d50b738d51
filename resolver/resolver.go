// Package resolver defines the adapter interfaces through which the
// evaluator core reaches out to the surrounding query planner: symbol
// bindings, input-tuple slots, and the scalar function catalogue. The
// evaluator never depends on a concrete planner; it only depends on
// these interfaces, which a host wires to its own catalog/binder.
package resolver

import (
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// ValueType enumerates the four scalar types the evaluator's external
// interface exposes.
type ValueType int

const (
	BigInt ValueType = iota
	Double
	Varchar
	Boolean
)

func (t ValueType) String() string {
	switch t {
	case BigInt:
		return "BIGINT"
	case Double:
		return "DOUBLE"
	case Varchar:
		return "VARCHAR"
	case Boolean:
		return "BOOLEAN"
	default:
		return "UNKNOWN"
	}
}

// SymbolResolver resolves a qualified name to a compile-time binding.
// Ok is false when the symbol has no known binding, in which case
// Optimization mode must residualize and Interpretation mode must
// raise evalerr.ErrUnresolvedSymbol.
type SymbolResolver interface {
	ResolveSymbol(parts []string) (v value.Value, ok bool)
}

// InputResolver supplies the live tuple value at a given input slot.
// Used only in Interpretation mode; Optimization mode has no input
// tuple and must residualize any InputReference it encounters.
type InputResolver interface {
	ResolveInput(slot int) (value.Value, error)
}

// FunctionDescriptor describes one entry in a FunctionRegistry: its
// formal parameter types, its determinism flag (consulted rather than
// hardcoded, per the evaluator's folding contract), whether its first
// formal parameter is the session handle, and the closure that
// performs the actual computation. Grounded on dolthub's
// sql.Function0/1/2/3/N + registry map pattern
// (sql/expression/function/registry.go), generalized to carry a
// per-arity/per-type descriptor instead of Go closures keyed only by
// arity.
type FunctionDescriptor struct {
	Name          string
	ArgTypes      []ValueType
	SessionArg    bool
	Deterministic bool
	Invoke        func(ctx *session.Context, args []value.Value) (value.Value, error)
}

// FunctionRegistry resolves a scalar function by qualified name and
// argument value types, mirroring resolve(name, argTypes) ->
// FunctionDescriptor. Lookup failure (ok false) is an unsupported
// construct, not a type mismatch.
type FunctionRegistry interface {
	LookupFunction(name string, argTypes []ValueType) (fn *FunctionDescriptor, ok bool)
}
