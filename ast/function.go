package ast

// FunctionCall is a scalar or aggregate function invocation. Window
// and Distinct are carried through for completeness of the AST
// contract; the core's evaluator only concerns itself with scalar
// invocation and rejects window calls as unsupported (windowing
// belongs to the query executor, a Non-goal of this module). Distinct
// is not consulted: the call is resolved and invoked as a scalar call.
type FunctionCall struct {
	Name     string
	Args     []Expr
	Distinct bool
	Window   bool
}

func (*FunctionCall) isExpr() {}

func NewFunctionCall(name string, args ...Expr) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}
