package formula

import "github.com/saraseidl/monster/internal/bitvector"

// Visitor is the four-callback protocol every formula consumer (the SMT
// emitter, an evaluator, a size-counter, ...) implements. R is the
// caller-chosen per-node result type; if R needs to carry failure, it does
// so itself (e.g. Result[SymbolId, error]-shaped struct) — Traverse never
// interprets R, it only caches and forwards it.
type Visitor[R any] interface {
	Input(id SymbolId, name string) R
	Constant(id SymbolId, v bitvector.BitVector) R
	Unary(id SymbolId, op bitvector.Operator, child R) R
	Binary(id SymbolId, op bitvector.Operator, lhs, rhs R) R
}

// Traverse walks f starting at root, visiting every node exactly once in
// post-order (children before parents) and returning the visitor's result
// for root. A memoization map from SymbolId to the cached R for that node
// is what makes a shared DAG cost O(nodes) instead of O(paths).
func Traverse[R any](f *Formula, root SymbolId, v Visitor[R]) R {
	memo := make(map[SymbolId]R, f.Len())
	return traverse(f, root, v, memo)
}

func traverse[R any](f *Formula, id SymbolId, v Visitor[R], memo map[SymbolId]R) R {
	if cached, ok := memo[id]; ok {
		return cached
	}

	n := f.nodeAt(id)
	var result R
	switch n.kind {
	case KindInput:
		result = v.Input(id, n.name)
	case KindConstant:
		result = v.Constant(id, n.value)
	case KindUnary:
		child := traverse(f, n.lhs, v, memo)
		result = v.Unary(id, n.op, child)
	case KindBinary:
		lhs := traverse(f, n.lhs, v, memo)
		rhs := traverse(f, n.rhs, v, memo)
		result = v.Binary(id, n.op, lhs, rhs)
	default:
		panic("formula: unreachable node kind")
	}

	memo[id] = result
	return result
}
