package eval

import (
	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/scalarlib"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

const defaultLikeEscape = '\\'

// evalLike implements LIKE, memoizing the compiled pattern by the
// *ast.Like node's pointer identity the way the teacher's Like node
// memoizes its matcher in a sync.Once/sync.Pool — here as a plain map
// entry, since the Evaluator itself is already the single-threaded
// reuse boundary. The cache is only populated when both Pattern and
// Escape are themselves literal AST nodes; a computed pattern could
// differ across calls and must be recompiled every time.
func (e *Evaluator) evalLike(ctx *session.Context, n *ast.Like) (value.Value, error) {
	subject, err := e.Eval(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	patternVal, err := e.Eval(ctx, n.Pattern)
	if err != nil {
		return nil, err
	}
	var escapeVal value.Value
	if n.Escape != nil {
		escapeVal, err = e.Eval(ctx, n.Escape)
		if err != nil {
			return nil, err
		}
	}

	if value.IsNull(subject) || value.IsNull(patternVal) || value.IsNull(escapeVal) {
		return value.Null{}, nil
	}
	if res, ok, err := foldOrResidualBinary(e, subject, patternVal, n.Value, n.Pattern, func(l, r ast.Expr) ast.Expr {
		return ast.NewLike(l, r, n.Escape)
	}); ok {
		return res, err
	}
	if n.Escape != nil {
		if res, ok, err := foldOrResidualBinary(e, subject, escapeVal, n.Value, n.Escape, func(l, r ast.Expr) ast.Expr {
			return ast.NewLike(l, n.Pattern, r)
		}); ok {
			return res, err
		}
	}

	escapeRune, err := resolveEscape(escapeVal)
	if err != nil {
		return nil, err
	}

	subjBytes, ok := subject.(value.Bytes)
	if !ok {
		return nil, errTypeMismatch("LIKE expects VARCHAR subject, got %T", subject)
	}
	patBytes, ok := patternVal.(value.Bytes)
	if !ok {
		return nil, errTypeMismatch("LIKE expects VARCHAR pattern, got %T", patternVal)
	}

	_, patternIsLiteral := n.Pattern.(*ast.Literal)
	_, escapeIsLiteralOrNil := n.Escape.(*ast.Literal)
	cacheable := patternIsLiteral && (n.Escape == nil || escapeIsLiteralOrNil)

	compiled, cached := e.caches.likePatterns[n]
	if !cached {
		c, err := compileLike(string(patBytes), escapeRune)
		if err != nil {
			return nil, errScalarFailure("%v", err)
		}
		compiled = c
		if cacheable {
			e.caches.likePatterns[n] = compiled
		}
	}

	if compiled.isRe {
		return value.Bool(compiled.re.Match(subjBytes)), nil
	}
	return value.Bool(string(subjBytes) == compiled.plain), nil
}

func compileLike(pattern string, escape rune) (*compiledLike, error) {
	if scalarlib.IsPlainEquality(pattern, escape) {
		return &compiledLike{plain: scalarlib.UnescapeLiteral(pattern, escape)}, nil
	}
	re, err := scalarlib.CompileLikePattern(pattern, escape)
	if err != nil {
		return nil, err
	}
	return &compiledLike{re: re, isRe: true}, nil
}

// resolveEscape turns an already-evaluated, already-null/residual-
// checked ESCAPE value into a rune. Callers must exclude Null and
// Residual via foldOrResidualBinary before reaching here.
func resolveEscape(v value.Value) (rune, error) {
	if v == nil {
		return defaultLikeEscape, nil
	}
	b, ok := v.(value.Bytes)
	if !ok || len(b) != 1 {
		return 0, errTypeMismatch("ESCAPE must be a single character")
	}
	return rune(b[0]), nil
}
