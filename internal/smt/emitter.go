package smt

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/solver"
)

// Emitter is the "external solver" backend: it writes an SMT-LIB QF_BV
// trace to output instead of solving anything. output is shared behind a
// mutex so concurrent Solve calls each write a contiguous
// push/body/check-sat/pop block instead of interleaving.
type Emitter struct {
	mu     sync.Mutex
	output io.Writer
}

var _ solver.Solver = (*Emitter)(nil)

// NewEmitter constructs an Emitter writing to output and immediately writes
// the SMT-LIB logic declaration.
func NewEmitter(output io.Writer) (*Emitter, error) {
	e := &Emitter{output: output}
	if _, err := fmt.Fprintln(output, "(set-logic QF_BV)"); err != nil {
		return nil, fmt.Errorf("%w: %v", solver.ErrTransport, err)
	}
	return e, nil
}

func (e *Emitter) Name() string { return "External" }

// Solve serializes f's root formula between a (push 1) and a
// (check-sat)\n(get-model)\n(pop 1), in that order, and always answers
// Unknown: this backend never reads a solver's reply. The push is always
// matched by the pop before Solve returns, even when a write fails partway
// through.
func (e *Emitter) Solve(f *formula.Formula) (result solver.Result, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if werr := e.write("(push 1)\n"); werr != nil {
		return solver.Result{}, fmt.Errorf("%w: %v", solver.ErrTransport, werr)
	}

	defer func() {
		perr := e.write("(check-sat)\n(get-model)\n(pop 1)\n")
		if perr != nil && err == nil {
			err = fmt.Errorf("%w: %v", solver.ErrTransport, perr)
		}
	}()

	printer := &smtPrinter{emitter: e}
	res := formula.Traverse(f, f.Root(), printer)
	if res.err != nil {
		err = fmt.Errorf("%w: %v", solver.ErrTransport, res.err)
		return
	}

	result = solver.Result{Outcome: solver.Unknown}
	return
}

// write is only called from within Solve, which holds e.mu for the whole
// query.
func (e *Emitter) write(s string) error {
	_, err := io.WriteString(e.output, s)
	return err
}

// nodeResult carries the child's own id (needed to print "x<id>" at the
// parent) and, on a write failure, the error to forward upward — error
// propagation is the visitor's responsibility, not the traversal's.
type nodeResult struct {
	id  formula.SymbolId
	err error
}

// smtPrinter implements formula.Visitor[nodeResult], emitting one
// declaration (plus, for everything but Input, one assertion) per node in
// the post-order the traversal already guarantees.
type smtPrinter struct {
	emitter *Emitter
}

func (p *smtPrinter) Input(id formula.SymbolId, name string) nodeResult {
	err := p.emitter.write(fmt.Sprintf("(declare-fun x%d () (_ BitVec 64)); %q\n", id, name))
	return nodeResult{id: id, err: err}
}

func (p *smtPrinter) Constant(id formula.SymbolId, v bitvector.BitVector) nodeResult {
	err := p.emitter.write(fmt.Sprintf(
		"(declare-fun x%d () (_ BitVec 64))\n(assert (= x%d (_ bv%d 64)))\n",
		id, id, v.Uint64(),
	))
	return nodeResult{id: id, err: err}
}

func (p *smtPrinter) Unary(id formula.SymbolId, op bitvector.Operator, child nodeResult) nodeResult {
	if child.err != nil {
		return nodeResult{id: id, err: child.err}
	}
	err := p.emitter.write(fmt.Sprintf(
		"(declare-fun x%d () (_ BitVec 64))\n(assert (= x%d (%s x%d)))\n",
		id, id, toSMT(op), child.id,
	))
	return nodeResult{id: id, err: err}
}

func (p *smtPrinter) Binary(id formula.SymbolId, op bitvector.Operator, lhs, rhs nodeResult) nodeResult {
	if lhs.err != nil || rhs.err != nil {
		return nodeResult{id: id, err: errors.Join(lhs.err, rhs.err)}
	}
	err := p.emitter.write(fmt.Sprintf(
		"(declare-fun x%d () (_ BitVec 64))\n(assert (= x%d (%s x%d x%d)))\n",
		id, id, toSMT(op), lhs.id, rhs.id,
	))
	return nodeResult{id: id, err: err}
}
