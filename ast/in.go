package ast

// InList is the literal-or-computed element list of an IN predicate.
type InList struct {
	Items []Expr
}

func (*InList) isExpr() {}

func NewInList(items ...Expr) *InList {
	return &InList{Items: items}
}

// In checks Value against List. List is typed as Expr rather than
// *InList because the analyzer may hand the core a value-list that is
// not a literal InList (e.g. a subquery placeholder); the evaluator
// treats that as unsupported in Interpretation mode and as an
// unreducible residual in Optimization mode.
type In struct {
	Value Expr
	List  Expr
}

func (*In) isExpr() {}

func NewIn(value Expr, list Expr) *In {
	return &In{Value: value, List: list}
}
