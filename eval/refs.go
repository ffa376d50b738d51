package eval

import (
	"strings"
	"time"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// evalSymbol resolves a QualifiedNameReference against e.Symbols. A
// table/alias-qualified name (e.g. t.col) is never a symbol — it is
// returned unresolved without ever consulting the resolver, since the
// resolver interface only keys on the bare tail of the name and would
// otherwise silently fold a column reference against an unrelated
// compile-time binding that happens to share its final part. In
// ModeOptimize an unresolved symbol residualizes; in ModeInterpret it
// is an error, since Interpretation's contract promises a concrete
// scalar and a leaked Residual there would violate that promise.
func (e *Evaluator) evalSymbol(ctx *session.Context, n *ast.QualifiedNameReference) (value.Value, error) {
	if n.HasPrefix() {
		return e.unresolvedSymbol(n)
	}
	if e.Symbols == nil {
		return e.unresolvedSymbol(n)
	}
	v, ok := e.Symbols.ResolveSymbol(n.Parts)
	if !ok {
		return e.unresolvedSymbol(n)
	}
	return v, nil
}

func (e *Evaluator) unresolvedSymbol(n *ast.QualifiedNameReference) (value.Value, error) {
	if e.Mode == ModeOptimize {
		return residual(n), nil
	}
	return nil, evalerr.ErrUnresolvedSymbol.New(strings.Join(n.Parts, "."))
}

// evalInputRef resolves an InputReference against e.Inputs. Optimize
// mode has no live tuple, so every InputReference residualizes there
// regardless of whether an InputResolver happens to be configured.
func (e *Evaluator) evalInputRef(ctx *session.Context, n *ast.InputReference) (value.Value, error) {
	if e.Mode == ModeOptimize {
		return residual(n), nil
	}
	if e.Inputs == nil {
		return nil, errUnsupported("no input resolver configured")
	}
	return e.Inputs.ResolveInput(n.Slot)
}

// evalCurrentTime reads the session clock. CURRENT_TIME/DATE/TIMESTAMP
// are folded in both modes since the session clock is available at
// optimization time too (the source pins the current instant once per
// compile/execute, not once per node evaluation).
func (e *Evaluator) evalCurrentTime(ctx *session.Context, n *ast.CurrentTime) (value.Value, error) {
	if n.Precision != nil {
		return nil, evalerr.ErrCurrentTimePrecision.New(*n.Precision)
	}
	now := ctx.Now().UTC()
	if n.Kind == ast.TimeKindDate {
		now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return value.Int64(now.Unix()), nil
}
