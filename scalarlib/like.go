// Package scalarlib holds the leaf-level scalar libraries the
// evaluator core dispatches into: LIKE pattern compilation, EXTRACT
// field computation, and CAST conversion. These are grounded on the
// teacher's sql/expression/like.go pattern translator and its
// datetime/type conversion helpers, generalized to the evaluator's
// two-mode contract.
package scalarlib

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// CompileLikePattern translates a SQL LIKE pattern (with '_' and '%'
// wildcards) into a Go regexp, honoring escape as the escape rune.
// Grounded on the teacher's patternToGoRegex, generalized to accept a
// caller-supplied escape rune instead of always assuming backslash.
func CompileLikePattern(pattern string, escape rune) (*regexp.Regexp, error) {
	var buf bytes.Buffer
	buf.WriteString("(?s)^")

	var escaped bool
	for _, r := range pattern {
		if escaped {
			buf.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
			continue
		}
		switch r {
		case escape:
			escaped = true
		case '_':
			buf.WriteRune('.')
		case '%':
			buf.WriteString(".*")
		default:
			buf.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	if escaped {
		return nil, fmt.Errorf("LIKE pattern %q ends with a dangling escape character", pattern)
	}
	buf.WriteRune('$')

	re, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, fmt.Errorf("compiling LIKE pattern %q: %w", pattern, err)
	}
	return re, nil
}

// IsPlainEquality reports whether pattern contains no unescaped
// wildcard, in which case LIKE degenerates to ordinary string
// equality and the caller may skip regex compilation entirely.
func IsPlainEquality(pattern string, escape rune) bool {
	var escaped bool
	for _, r := range pattern {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case escape:
			escaped = true
		case '_', '%':
			return false
		}
	}
	return true
}

// UnescapeLiteral strips escape runes from a plain-equality LIKE
// pattern so it can be compared directly against the subject string.
func UnescapeLiteral(pattern string, escape rune) string {
	var b strings.Builder
	var escaped bool
	for _, r := range pattern {
		if !escaped && r == escape {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
