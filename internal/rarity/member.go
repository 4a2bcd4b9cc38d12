package rarity

import (
	"errors"

	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/riscu"
)

// member is one population slot: a concretely-executing state paired with
// the deterministic random-input source it reads from, plus whatever
// fingerprints it touched during the round just advanced.
type member struct {
	state   *riscu.State
	io      *randomIO
	halted  bool
	touched []Fingerprint
}

// advance steps m.state up to stepSize times, recording a fingerprint
// after every successful step. It stops early, and
// marks m halted, on any terminal error; a halted member is left alone by
// future rounds until it is replaced by refill. f is the scratch formula
// every call shares — see Driver.dummy's doc comment for why it is always
// safe to pass one here despite never truly being written to.
func advance(m *member, f *formula.Formula, stepSize int) []Finding {
	if m.halted {
		m.touched = nil
		return nil
	}

	m.touched = make([]Fingerprint, 0, stepSize)
	var findings []Finding
	for i := 0; i < stepSize; i++ {
		err := riscu.Step(m.state, f, m.io)
		if err != nil {
			m.halted = true
			if finding, ok := classify(m.state.ID, m.state.PC, err); ok {
				findings = append(findings, finding)
			}
			break
		}
		m.touched = append(m.touched, FingerprintOf(m.state))
	}
	return findings
}

// classify turns a terminal Step error into a reportable Finding, the same
// way internal/symbolic's handleTerminal does: a clean (status-0) exit is
// ordinary successful termination, not a finding. A
// symbolic-branch request can never occur here (every value the rarity
// driver ever introduces is concrete), so it falls through to ok==false.
func classify(id int, pc uint64, err error) (Finding, bool) {
	var trap *riscu.GuestTrap
	var exit *riscu.ExitError
	var decodeErr *riscu.DecodeError

	switch {
	case errors.As(err, &trap):
		return Finding{Kind: FindingTrap, StateID: id, PC: pc, Trap: trap.Kind}, true
	case errors.As(err, &exit):
		if exit.Status == 0 {
			return Finding{}, false
		}
		return Finding{Kind: FindingNonZeroExit, StateID: id, PC: pc, ExitStatus: exit.Status}, true
	case errors.As(err, &decodeErr):
		return Finding{Kind: FindingDecodeFailure, StateID: id, PC: pc}, true
	default:
		return Finding{}, false
	}
}
