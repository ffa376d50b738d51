package ast

// Like is a LIKE predicate. Escape is nil when no ESCAPE clause was
// given, in which case the default escape character is a backslash.
type Like struct {
	Value   Expr
	Pattern Expr
	Escape  Expr
}

func (*Like) isExpr() {}

func NewLike(value, pattern, escape Expr) *Like {
	return &Like{Value: value, Pattern: pattern, Escape: escape}
}
