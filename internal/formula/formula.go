package formula

import (
	"fmt"

	"github.com/saraseidl/monster/internal/bitvector"
)

// SymbolId is the stable, dense-from-zero identifier of a formula node.
// Density would let a visitor memoize with a plain slice indexed by id;
// Traverse itself memoizes with a map keyed by SymbolId.
type SymbolId int

// Kind discriminates the four node shapes a Formula may hold.
type Kind uint8

const (
	KindInput Kind = iota
	KindConstant
	KindUnary
	KindBinary
)

// node is the internal representation of one IR node. Only one branch of
// the payload is meaningful, selected by Kind: a single flat struct avoids
// an interface per node shape, which would force a heap allocation and a
// type switch on every visit.
type node struct {
	kind Kind

	// KindInput
	name string

	// KindConstant
	value bitvector.BitVector

	// KindUnary / KindBinary
	op       bitvector.Operator
	lhs, rhs SymbolId // rhs unused for KindUnary
}

// Formula owns an append-only node array — nodes are never rewritten once
// constructed — and the current root of the path condition it represents.
type Formula struct {
	nodes    []node
	root     SymbolId
	hasRoot  bool
	constIDs map[bitvector.BitVector]SymbolId // interning table
}

// New returns an empty Formula with no root.
func New() *Formula {
	return &Formula{constIDs: make(map[bitvector.BitVector]SymbolId)}
}

// Len returns the number of nodes constructed so far.
func (f *Formula) Len() int { return len(f.nodes) }

// Root returns the current root node id. Panics if no node has been
// designated as root yet (SetRoot/AddInput.../etc never implicitly pick one
// — the driver decides).
func (f *Formula) Root() SymbolId {
	if !f.hasRoot {
		panic("formula: Root called before SetRoot")
	}
	return f.root
}

// SetRoot designates id as the formula's root, e.g. when the driver extends
// a path condition with a new BitwiseAnd.
func (f *Formula) SetRoot(id SymbolId) {
	f.checkID(id)
	f.root = id
	f.hasRoot = true
}

// checkID panics with ErrDanglingSymbolID if id was never constructed on
// this Formula — the "impossible by construction" invariant violation.
func (f *Formula) checkID(id SymbolId) {
	if id < 0 || int(id) >= len(f.nodes) {
		panic(fmt.Errorf("%w: %d (len=%d)", ErrDanglingSymbolID, id, len(f.nodes)))
	}
}

func (f *Formula) push(n node) SymbolId {
	id := SymbolId(len(f.nodes))
	f.nodes = append(f.nodes, n)
	return id
}

// AddInput appends a new free symbolic variable named name and returns its
// id. Inputs are never interned — two inputs with the same name are
// distinct nodes, matching a RISC-U program reading the same symbolic
// register twice at different points in the path.
func (f *Formula) AddInput(name string) SymbolId {
	return f.push(node{kind: KindInput, name: name})
}

// AddConstant appends (or reuses) the node for literal value v. Same value
// implies same id: constants are interned, but arbitrary subtrees are not
// deduplicated.
func (f *Formula) AddConstant(v bitvector.BitVector) SymbolId {
	if id, ok := f.constIDs[v]; ok {
		return id
	}
	id := f.push(node{kind: KindConstant, value: v})
	f.constIDs[v] = id
	return id
}

// AddUnary appends a Unary(op, child) node. child must already exist on f.
func (f *Formula) AddUnary(op bitvector.Operator, child SymbolId) SymbolId {
	if !op.IsUnary() {
		panic(fmt.Sprintf("formula: %s is not a unary operator", op))
	}
	f.checkID(child)
	return f.push(node{kind: KindUnary, op: op, lhs: child})
}

// AddBinary appends a Binary(op, lhs, rhs) node. lhs and rhs must already
// exist on f; structural sharing (both parents pointing at the same child)
// is expected and never rejected.
func (f *Formula) AddBinary(op bitvector.Operator, lhs, rhs SymbolId) SymbolId {
	if op.IsUnary() {
		panic(fmt.Sprintf("formula: %s is not a binary operator", op))
	}
	f.checkID(lhs)
	f.checkID(rhs)
	return f.push(node{kind: KindBinary, op: op, lhs: lhs, rhs: rhs})
}

// Conjoin builds a new BitwiseAnd(root, predicate) node, appends it, and
// sets it as the new root — the exact operation the symbolic driver performs
// when extending a path condition at a branch.
func (f *Formula) Conjoin(predicate SymbolId) SymbolId {
	f.checkID(predicate)
	next := f.AddBinary(bitvector.BitwiseAnd, f.Root(), predicate)
	f.SetRoot(next)
	return next
}

// KindOf returns the Kind of node id.
func (f *Formula) KindOf(id SymbolId) Kind {
	return f.nodeAt(id).kind
}

// Name returns the name of an Input node. Panics if id is not KindInput.
func (f *Formula) Name(id SymbolId) string {
	n := f.nodeAt(id)
	if n.kind != KindInput {
		panic(fmt.Sprintf("formula: node %d is not an Input", id))
	}
	return n.name
}

func (f *Formula) nodeAt(id SymbolId) node {
	f.checkID(id)
	return f.nodes[id]
}
