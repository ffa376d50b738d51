package ast

// WhenClause is a single WHEN/THEN pair of a searched CASE.
type WhenClause struct {
	Cond   Expr
	Result Expr
}

// SearchedCase evaluates each Cond in order and returns the Result of
// the first one that is true, or Else (or null) if none match.
type SearchedCase struct {
	Whens []WhenClause
	Else  Expr
}

func (*SearchedCase) isExpr() {}

func NewSearchedCase(whens []WhenClause, els Expr) *SearchedCase {
	return &SearchedCase{Whens: whens, Else: els}
}

// SimpleWhenClause is a single WHEN/THEN pair of a simple CASE, whose
// WHEN operand is compared against the CASE's selector for equality.
type SimpleWhenClause struct {
	Match  Expr
	Result Expr
}

// SimpleCase compares Operand against each Whens[i].Match in order.
type SimpleCase struct {
	Operand Expr
	Whens   []SimpleWhenClause
	Else    Expr
}

func (*SimpleCase) isExpr() {}

func NewSimpleCase(operand Expr, whens []SimpleWhenClause, els Expr) *SimpleCase {
	return &SimpleCase{Operand: operand, Whens: whens, Else: els}
}
