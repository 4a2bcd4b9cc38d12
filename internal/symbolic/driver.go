package symbolic

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/exploration"
	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/riscu"
	"github.com/saraseidl/monster/internal/solver"
)

// Driver runs the symbolic execution loop over a single shared
// formula.Formula: one Formula per run, not one per State, since the
// driver is single-threaded cooperative and ids only ever grow.
type Driver struct {
	formula  *formula.Formula
	solver   solver.Solver
	strategy exploration.Strategy
	io       riscu.GuestIO
	log      *logrus.Entry

	maxDepth int

	states   map[int]*riscu.State
	frontier *exploration.PathFrontier[int]
	nextID   int

	// trueRoot is the formula node every fresh path's condition starts
	// conjoined against: Constant(One), a trivially satisfied base case so
	// Conjoin always has a well-defined existing root to extend.
	trueRoot formula.SymbolId

	findings []Finding
}

// Config bundles the driver's fixed configuration, validated once at the
// CLI boundary.
type Config struct {
	MaxExecutionDepth int
	Strategy          exploration.Strategy
	Solver            solver.Solver
	IO                riscu.GuestIO
	Logger            *logrus.Logger
}

// NewDriver constructs a driver seeded with a single path starting from
// entry.
func NewDriver(entry *riscu.State, f *formula.Formula, cfg Config) *Driver {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	d := &Driver{
		formula:  f,
		solver:   cfg.Solver,
		strategy: cfg.Strategy,
		io:       cfg.IO,
		log:      logger.WithField("component", "symbolic"),
		maxDepth: cfg.MaxExecutionDepth,
		states:   make(map[int]*riscu.State),
		frontier: exploration.NewPathFrontier[int](),
	}
	d.trueRoot = f.AddConstant(bitvector.One)

	entry.ID = 0
	d.states[0] = entry
	d.frontier.Push(0, entry.PC)
	d.nextID = 1

	return d
}

// Run drains the frontier, advancing one path at a time, and returns every
// finding recorded along the way. It returns a non-nil error only for a
// solver transport error, which terminates the driver rather than just
// the path that triggered it.
func (d *Driver) Run() ([]Finding, error) {
	for d.frontier.Len() > 0 {
		id, _, _ := d.frontier.Take(d.strategy)
		s := d.states[id]
		delete(d.states, id)

		if s.Steps >= d.maxDepth {
			d.findings = append(d.findings, Finding{Kind: FindingDepthBound, PathID: id, PC: s.PC})
			continue
		}

		err := riscu.Step(s, d.formula, d.io)
		switch {
		case err == nil:
			d.states[id] = s
			d.frontier.Push(id, s.PC)

		case riscu.IsSymbolicBranch(err):
			if err := d.forkAtBranch(id, s); err != nil {
				return d.findings, err
			}

		default:
			if err := d.handleTerminal(id, s, err); err != nil {
				return d.findings, err
			}
		}
	}
	return d.findings, nil
}

// handleTerminal classifies a Step error that is not a symbolic branch:
// a guest trap, a normal or non-zero exit, or a decode failure.
func (d *Driver) handleTerminal(id int, s *riscu.State, err error) error {
	var trap *riscu.GuestTrap
	var exit *riscu.ExitError
	var decodeErr *riscu.DecodeError

	switch {
	case errors.As(err, &trap):
		d.findings = append(d.findings, Finding{Kind: FindingTrap, PathID: id, PC: s.PC, Trap: trap.Kind})
	case errors.As(err, &exit):
		if exit.Status != 0 {
			d.findings = append(d.findings, Finding{Kind: FindingNonZeroExit, PathID: id, PC: s.PC, ExitStatus: exit.Status})
		}
	case errors.As(err, &decodeErr):
		d.findings = append(d.findings, Finding{Kind: FindingDecodeFailure, PathID: id, PC: s.PC})
	default:
		d.log.WithError(err).Warn("path terminated with an unrecognized error")
	}
	return nil
}

// forkAtBranch resolves a symbolic Beq at s.PC: it builds the equality
// predicate from the branch's operands, queries the solver for both the
// taken and not-taken path conditions, and enqueues a new forked path for
// every side the solver reports Sat.
func (d *Driver) forkAtBranch(id int, s *riscu.State) error {
	in, err := riscu.Decode(s.PC, littleEndianWord(s.Mem, s.PC))
	if err != nil {
		d.findings = append(d.findings, Finding{Kind: FindingDecodeFailure, PathID: id, PC: s.PC})
		return nil
	}

	base := d.trueRoot
	if s.HasPathCondition() {
		base = s.PathCondition
	}

	lhs := regSymbol(d.formula, s, in.RS1)
	rhs := regSymbol(d.formula, s, in.RS2)
	predicate := d.formula.AddBinary(bitvector.Equals, lhs, rhs)
	notPredicate := d.formula.AddBinary(bitvector.Equals, predicate, d.formula.AddConstant(bitvector.Zero))

	takenTarget := uint64(int64(s.PC) + in.Imm)
	fallthroughTarget := s.PC + 4

	if err := d.tryFork(id, s, base, predicate, takenTarget); err != nil {
		return err
	}
	if err := d.tryFork(id, s, base, notPredicate, fallthroughTarget); err != nil {
		return err
	}
	return nil
}

// tryFork conjoins base with sidePredicate, queries the solver, and on Sat
// enqueues a new forked path at targetPC with the conjunction as its path
// condition. On Unsat the side is silently discarded; on Unknown a finding
// is recorded and the side is discarded without forking a child; on a
// transport error the run stops entirely.
func (d *Driver) tryFork(id int, s *riscu.State, base, sidePredicate formula.SymbolId, targetPC uint64) error {
	d.formula.SetRoot(base)
	root := d.formula.Conjoin(sidePredicate)

	result, err := d.solver.Solve(d.formula)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case solver.Sat:
		childID := d.nextID
		d.nextID++
		child := s.Fork(childID)
		child.PC = targetPC
		child.SetPathCondition(root)
		d.states[childID] = child
		d.frontier.Push(childID, targetPC)
	case solver.Unknown:
		d.findings = append(d.findings, Finding{Kind: FindingSolverUnknown, PathID: id, PC: s.PC, Assignment: result.Assignment})
	case solver.Unsat:
		// discard silently
	}
	return nil
}

// regSymbol mirrors riscu's internal helper of the same purpose: it
// returns r's SymbolId, interning a fresh Constant node when r currently
// holds a concrete value, since the Equals predicate needs both sides
// expressed as formula nodes.
func regSymbol(f *formula.Formula, s *riscu.State, r uint64) formula.SymbolId {
	if s.IsRegSymbolic(r) {
		return s.RegSymbol(r)
	}
	return f.AddConstant(s.Reg[r])
}

func littleEndianWord(mem []byte, pc uint64) uint32 {
	return uint32(mem[pc]) | uint32(mem[pc+1])<<8 | uint32(mem[pc+2])<<16 | uint32(mem[pc+3])<<24
}
