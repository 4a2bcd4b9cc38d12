package symbolic

import (
	"fmt"

	"github.com/saraseidl/monster/internal/riscu"
	"github.com/saraseidl/monster/internal/solver"
)

// FindingKind discriminates the terminal events that end a path without
// ending the run: traps, a non-zero exit (a RISC-U benchmark program's
// usual way of reporting an assertion or check failure), a decode failure,
// a depth-bound cutoff, and an inconclusive solver query.
type FindingKind uint8

const (
	FindingTrap FindingKind = iota
	FindingNonZeroExit
	FindingDecodeFailure
	FindingDepthBound
	FindingSolverUnknown
)

func (k FindingKind) String() string {
	switch k {
	case FindingTrap:
		return "trap"
	case FindingNonZeroExit:
		return "non-zero exit"
	case FindingDecodeFailure:
		return "decode failure"
	case FindingDepthBound:
		return "depth bound reached"
	case FindingSolverUnknown:
		return "solver answered unknown"
	default:
		return "unknown finding"
	}
}

// Finding is one reported event. TrapKind is only meaningful when Kind ==
// FindingTrap. Assignment is set only on FindingSolverUnknown findings,
// copied from that Unknown result; a Result carries an assignment only for
// Sat, so it is empty in practice. No finding carries the satisfying
// assignment of the path that reached it.
type Finding struct {
	Kind       FindingKind
	PathID     int
	PC         uint64
	Trap       riscu.TrapKind
	ExitStatus int64
	Assignment solver.Assignment
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingTrap:
		return fmt.Sprintf("path %d at pc=%#x: %s (%s)", f.PathID, f.PC, f.Kind, f.Trap)
	case FindingNonZeroExit:
		return fmt.Sprintf("path %d at pc=%#x: %s (status=%d)", f.PathID, f.PC, f.Kind, f.ExitStatus)
	default:
		return fmt.Sprintf("path %d at pc=%#x: %s", f.PathID, f.PC, f.Kind)
	}
}
