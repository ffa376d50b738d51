package ast

// QualifiedNameReference is a possibly table-qualified name. A bare
// name (len(Parts) == 1) may resolve to a compile-time symbol; a
// qualified name (e.g. t.col) is never a symbol: it evaluates to a
// residual of itself in Optimization mode and is an unresolved-symbol
// error in Interpretation mode.
type QualifiedNameReference struct {
	Parts []string
}

func (*QualifiedNameReference) isExpr() {}

func NewQualifiedNameReference(parts ...string) *QualifiedNameReference {
	return &QualifiedNameReference{Parts: parts}
}

// HasPrefix reports whether the reference carries a table/alias
// qualifier and therefore cannot be a bare symbol.
func (q *QualifiedNameReference) HasPrefix() bool {
	return len(q.Parts) > 1
}

// Name returns the bare symbol name; only meaningful when !HasPrefix().
func (q *QualifiedNameReference) Name() string {
	if len(q.Parts) == 0 {
		return ""
	}
	return q.Parts[len(q.Parts)-1]
}

// InputReference is a positional slot into the current input row,
// resolved only in Interpretation mode.
type InputReference struct {
	Slot int
}

func (*InputReference) isExpr() {}

func NewInputReference(slot int) *InputReference {
	return &InputReference{Slot: slot}
}
