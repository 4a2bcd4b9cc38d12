package rarity

import (
	"fmt"

	"github.com/saraseidl/monster/internal/riscu"
)

// FindingKind enumerates what a population member's run can terminate in,
// scoped to the concrete outcomes a rarity member can reach — there is no
// solver, so no Unknown/depth-bound counterpart exists here (a member
// simply stops being advanced once its step budget for the round is
// spent).
type FindingKind int

const (
	FindingTrap FindingKind = iota
	FindingNonZeroExit
	FindingDecodeFailure
)

func (k FindingKind) String() string {
	switch k {
	case FindingTrap:
		return "trap"
	case FindingNonZeroExit:
		return "non-zero exit"
	case FindingDecodeFailure:
		return "decode failure"
	default:
		return "unknown finding"
	}
}

// Finding reports one population member reaching a terminal, reportable
// outcome during a round.
type Finding struct {
	Kind       FindingKind
	StateID    int
	PC         uint64
	Trap       riscu.TrapKind
	ExitStatus int64
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingTrap:
		return fmt.Sprintf("state %d: trap at pc=%#x: %s", f.StateID, f.PC, f.Trap)
	case FindingNonZeroExit:
		return fmt.Sprintf("state %d: exited with status %d at pc=%#x", f.StateID, f.ExitStatus, f.PC)
	case FindingDecodeFailure:
		return fmt.Sprintf("state %d: undecodable instruction at pc=%#x", f.StateID, f.PC)
	default:
		return fmt.Sprintf("state %d: %s at pc=%#x", f.StateID, f.Kind, f.PC)
	}
}
