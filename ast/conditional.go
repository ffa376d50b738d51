package ast

// Coalesce returns the first non-null argument, or null if all are null.
type Coalesce struct {
	Args []Expr
}

func (*Coalesce) isExpr() {}

func NewCoalesce(args ...Expr) *Coalesce {
	return &Coalesce{Args: args}
}

// NullIf(a, b): null when a equals b, else a; b null returns a; a null
// returns null.
type NullIf struct {
	A Expr
	B Expr
}

func (*NullIf) isExpr() {}

func NewNullIf(a, b Expr) *NullIf {
	return &NullIf{A: a, B: b}
}

// If(cond, then, else?). Else may be nil, in which case a false/null
// condition yields null.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*If) isExpr() {}

func NewIf(cond, then, els Expr) *If {
	return &If{Cond: cond, Then: then, Else: els}
}
