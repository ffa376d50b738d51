package eval

import (
	"regexp"

	"github.com/relacore/sqleval/ast"
)

// caches holds the Evaluator's per-instance memoizations, keyed by
// the pointer identity of the AST node they were compiled from. Go
// pointers are natively comparable and hashable, so no arena-index
// workaround is needed here the way a language without pointer
// identity would require (see the ast package's doc comment).
type caches struct {
	likePatterns map[*ast.Like]*compiledLike
	inSets       map[*ast.In]*inSet
}

func newCaches() caches {
	return caches{
		likePatterns: make(map[*ast.Like]*compiledLike),
		inSets:       make(map[*ast.In]*inSet),
	}
}

// compiledLike is the memoized compilation of a LIKE node's pattern.
// re is nil when the pattern degenerates to plain equality, in which
// case plain holds the unescaped literal to compare against directly.
type compiledLike struct {
	re    *regexp.Regexp
	plain string
	isRe  bool
}
