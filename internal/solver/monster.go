package solver

import (
	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

// candidateBudget bounds how many distinct input nodes MonsterSolver will
// brute-force before giving up and answering Unknown. This keeps the
// bundled in-process backend usable for the small branch conditions a
// RISC-U benchmark actually produces without pretending to be a real
// decision procedure.
const candidateBudget = 2

// MonsterSolver is the bundled in-process backend selected by Type Monster,
// the CLI default.
//
// It is a small, honestly-bounded reference implementation so the Solver
// interface has a default backend to exercise, not a real SMT decision
// procedure. It collects the input nodes and literal constants reachable
// from the query root, builds a candidate value set from those constants
// (each constant, constant±1, 0, 1, and the all-ones value), and brute-forces
// every assignment of candidates to inputs up to candidateBudget distinct
// inputs. Formulas with more free inputs than that are reported Unknown
// rather than silently guessed at.
type MonsterSolver struct{}

// NewMonsterSolver constructs the bundled in-process solver. It holds no
// state between queries.
func NewMonsterSolver() *MonsterSolver { return &MonsterSolver{} }

func (*MonsterSolver) Name() string { return "Monster" }

func (s *MonsterSolver) Solve(f *formula.Formula) (Result, error) {
	root := f.Root()
	gatherer := &gatherVisitor{inputs: make(map[formula.SymbolId]string), seen: make(map[formula.SymbolId]bool)}
	formula.Traverse(f, root, gatherer)

	inputIDs := make([]formula.SymbolId, 0, len(gatherer.inputs))
	for id := range gatherer.inputs {
		inputIDs = append(inputIDs, id)
	}

	if len(inputIDs) == 0 {
		v := formula.Traverse(f, root, &evalVisitor{assignment: nil})
		if v != bitvector.Zero {
			return Result{Outcome: Sat, Assignment: Assignment{}}, nil
		}
		return Result{Outcome: Unsat}, nil
	}

	if len(inputIDs) > candidateBudget {
		return Result{Outcome: Unknown}, nil
	}

	candidates := candidateValues(gatherer.constants)
	assignment := make(Assignment, len(inputIDs))
	if ok := search(f, root, inputIDs, candidates, assignment); ok {
		return Result{Outcome: Sat, Assignment: assignment}, nil
	}
	return Result{Outcome: Unsat}, nil
}

// search brute-forces assignments of candidates to inputIDs[0:], evaluating
// the formula once all inputs in the current prefix are bound. It mutates
// assignment in place and leaves it holding the satisfying model on success.
func search(f *formula.Formula, root formula.SymbolId, inputIDs []formula.SymbolId, candidates []bitvector.BitVector, assignment Assignment) bool {
	if len(inputIDs) == 0 {
		v := formula.Traverse(f, root, &evalVisitor{assignment: assignment})
		return v != bitvector.Zero
	}

	id := inputIDs[0]
	rest := inputIDs[1:]
	for _, c := range candidates {
		assignment[id] = c
		if search(f, root, rest, candidates, assignment) {
			return true
		}
	}
	delete(assignment, id)
	return false
}

// candidateValues builds the bounded value set MonsterSolver probes: the
// literal constants that appear in the query (the only values a RISC-U
// branch condition like "x < 10" actually cares about near the boundary),
// their neighbors, zero, one, and the all-ones bit pattern.
func candidateValues(constants map[bitvector.BitVector]bool) []bitvector.BitVector {
	set := map[bitvector.BitVector]bool{
		bitvector.Zero: true,
		bitvector.One:  true,
		bitvector.FromUint64(^uint64(0)): true,
	}
	for c := range constants {
		set[c] = true
		set[c.Add(bitvector.One)] = true
		set[c.Sub(bitvector.One)] = true
	}
	out := make([]bitvector.BitVector, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

// gatherVisitor collects every Input node reachable from the traversal
// root and every literal Constant value, for candidate generation.
type gatherVisitor struct {
	inputs    map[formula.SymbolId]string
	constants map[bitvector.BitVector]bool
	seen      map[formula.SymbolId]bool
}

func (g *gatherVisitor) Input(id formula.SymbolId, name string) struct{} {
	g.inputs[id] = name
	return struct{}{}
}

func (g *gatherVisitor) Constant(id formula.SymbolId, v bitvector.BitVector) struct{} {
	if g.constants == nil {
		g.constants = make(map[bitvector.BitVector]bool)
	}
	g.constants[v] = true
	return struct{}{}
}

func (g *gatherVisitor) Unary(id formula.SymbolId, op bitvector.Operator, child struct{}) struct{} {
	return struct{}{}
}

func (g *gatherVisitor) Binary(id formula.SymbolId, op bitvector.Operator, lhs, rhs struct{}) struct{} {
	return struct{}{}
}

// evalVisitor concretely evaluates a formula given a (possibly nil, for
// input-free formulas) assignment.
type evalVisitor struct {
	assignment Assignment
}

func (e *evalVisitor) Input(id formula.SymbolId, name string) bitvector.BitVector {
	v, ok := e.assignment[id]
	if !ok {
		panic("solver: evalVisitor reached an unassigned input; candidate search is unsound")
	}
	return v
}

func (e *evalVisitor) Constant(id formula.SymbolId, v bitvector.BitVector) bitvector.BitVector {
	return v
}

func (e *evalVisitor) Unary(id formula.SymbolId, op bitvector.Operator, child bitvector.BitVector) bitvector.BitVector {
	return bitvector.ApplyUnary(op, child)
}

func (e *evalVisitor) Binary(id formula.SymbolId, op bitvector.Operator, lhs, rhs bitvector.BitVector) bitvector.BitVector {
	v, _ := bitvector.ApplyBinary(op, lhs, rhs)
	return v
}
