package eval

import (
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/relacore/sqleval/ast"
	"github.com/relacore/sqleval/evalerr"
	"github.com/relacore/sqleval/session"
	"github.com/relacore/sqleval/value"
)

// inSet is a memoized hash-bucketed membership index over an In
// node's InList, grounded on the teacher's hashOfSimple/HashInTuple
// pattern in sql/expression/in.go: values are formatted and hashed
// with xxhash into buckets, then bucket members are compared exactly
// to resolve collisions. Numeric members hash by their float64
// representation so that 5 (int64) and 5.0 (float64) land in the same
// bucket and compare equal via valuesEqual.
type inSet struct {
	buckets map[uint64][]value.Value
	hasNull bool
}

func buildInSet(items []value.Value) *inSet {
	s := &inSet{buckets: make(map[uint64][]value.Value, len(items))}
	for _, it := range items {
		if _, isNull := it.(value.Null); isNull {
			s.hasNull = true
			continue
		}
		h := hashValue(it)
		s.buckets[h] = append(s.buckets[h], it)
	}
	return s
}

func hashValue(v value.Value) uint64 {
	d := xxhash.New()
	switch x := v.(type) {
	case value.Int64:
		fmt.Fprintf(d, "n:%v", float64(x))
	case value.Float64:
		fmt.Fprintf(d, "n:%v", float64(x))
	case value.Bytes:
		fmt.Fprintf(d, "s:%s", []byte(x))
	case value.Bool:
		fmt.Fprintf(d, "b:%v", bool(x))
	default:
		fmt.Fprintf(d, "?:%v", x)
	}
	return d.Sum64()
}

func (s *inSet) contains(v value.Value) (found bool, sawNull bool, err error) {
	h := hashValue(v)
	sawNull = s.hasNull
	for _, cand := range s.buckets[h] {
		eq, cerr := valuesEqual(v, cand)
		if cerr != nil {
			continue
		}
		if eq {
			return true, sawNull, nil
		}
	}
	return false, sawNull, nil
}

// evalIn implements the IN predicate: value IN (list...). A List that
// is not an *ast.InList (e.g. a subquery) is unsupported in
// ModeInterpret and is returned unreduced in ModeOptimize. Only a list
// whose items are all *ast.Literal nodes is cached.
// Truth table: found -> true; not found but any list element (or the
// probe) is null -> null; otherwise false.
func (e *Evaluator) evalIn(ctx *session.Context, n *ast.In) (value.Value, error) {
	list, ok := n.List.(*ast.InList)
	if !ok {
		if e.Mode == ModeOptimize {
			return residual(n), nil
		}
		return nil, evalerr.ErrInvalidInOperand.New(fmt.Sprintf("%T", n.List))
	}

	probe, err := e.Eval(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	if r, isResidual := probe.(value.Residual); isResidual {
		return e.residualIn(ctx, r.Expr, list)
	}

	set, cached := e.caches.inSets[n]
	if !cached {
		for _, item := range list.Items {
			if _, isLiteral := item.(*ast.Literal); !isLiteral {
				return e.evalInUncached(ctx, probe, list)
			}
		}
		items := make([]value.Value, 0, len(list.Items))
		for _, item := range list.Items {
			v, err := e.Eval(ctx, item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		set = buildInSet(items)
		e.caches.inSets[n] = set
	}

	if _, isNull := probe.(value.Null); isNull {
		return value.Null{}, nil
	}

	found, sawNull, err := set.contains(probe)
	if err != nil {
		return nil, err
	}
	if found {
		return value.Bool(true), nil
	}
	if sawNull {
		return value.Null{}, nil
	}
	return value.Bool(false), nil
}

// evalInUncached evaluates an IN list whose items are not all
// literal-like (so caching would be unsound) by walking the whole list
// on every call. It never short-circuits on the first residual item:
// every item is evaluated and folded into the rebuilt list, and a
// later concrete match still wins over an earlier residual per §4.1's
// precedence ("match ⇒ true" outranks "any unresolved ⇒ residual") —
// only a confirmed match short-circuits the scan.
func (e *Evaluator) evalInUncached(ctx *session.Context, probe value.Value, list *ast.InList) (value.Value, error) {
	if _, isNull := probe.(value.Null); isNull {
		return value.Null{}, nil
	}
	sawNull := false
	sawResidual := false
	rebuilt := make([]ast.Expr, len(list.Items))
	for i, item := range list.Items {
		v, err := e.Eval(ctx, item)
		if err != nil {
			return nil, err
		}
		if r, isResidual := v.(value.Residual); isResidual {
			sawResidual = true
			rebuilt[i] = r.Expr
			continue
		}
		rebuilt[i] = reconstruct(v)
		if _, isNull := v.(value.Null); isNull {
			sawNull = true
			continue
		}
		eq, err := valuesEqual(probe, v)
		if err != nil {
			continue
		}
		if eq {
			return value.Bool(true), nil
		}
	}
	if sawResidual {
		if e.Mode == ModeInterpret {
			return nil, errTypeMismatch("unresolved residual encountered during interpretation")
		}
		return residual(ast.NewIn(reconstruct(probe), &ast.InList{Items: rebuilt})), nil
	}
	if sawNull {
		return value.Null{}, nil
	}
	return value.Bool(false), nil
}

// residualIn rebuilds an IN node with a residual value and a fully
// re-literalized list for ModeOptimize; ModeInterpret must never reach
// here since Interpret evaluation never yields a Residual for a
// sub-evaluation.
func (e *Evaluator) residualIn(ctx *session.Context, valueExpr ast.Expr, list *ast.InList) (value.Value, error) {
	if e.Mode == ModeInterpret {
		return nil, errTypeMismatch("unresolved residual encountered during interpretation")
	}
	rebuilt := make([]ast.Expr, len(list.Items))
	for i, item := range list.Items {
		v, err := e.Eval(ctx, item)
		if err != nil {
			return nil, err
		}
		rebuilt[i] = exprOf(v, item)
	}
	return residual(ast.NewIn(valueExpr, &ast.InList{Items: rebuilt})), nil
}
