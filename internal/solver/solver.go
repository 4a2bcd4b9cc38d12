package solver

import (
	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

// Assignment maps an input node's SymbolId to the concrete value a
// satisfying model gives it.
type Assignment map[formula.SymbolId]bitvector.BitVector

// Outcome is the tagged result of a query, one of Sat/Unsat/Unknown.
type Outcome uint8

const (
	Unsat Outcome = iota
	Sat
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Result is what a successful (non-transport-error) query returns.
// Assignment is only populated when Outcome == Sat.
type Result struct {
	Outcome    Outcome
	Assignment Assignment
}

// Solver is the uniform contract every backend satisfies: given a formula,
// return one of Sat(Assignment), Unsat, Unknown, or a transport error.
// A transport error is returned as a non-nil error wrapping ErrTransport;
// Unknown is returned as a Result, not an error, since it is a legitimate
// (if unhelpful) answer, not a failure of the query mechanism.
type Solver interface {
	// Name identifies the backend for logging.
	Name() string
	Solve(f *formula.Formula) (Result, error)
}

// Type is the tagged variant selecting which Solver backend to construct.
// Backend selection is a configuration option, fixed at driver
// construction.
type Type string

const (
	Monster  Type = "monster"
	External Type = "external"
)

// Variants lists the CLI-visible values for --solver.
func Variants() []string { return []string{string(Monster), string(External)} }

// ParseType validates a CLI --solver value: a small free function, not a
// reflection-based schema validator.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Monster, External:
		return Type(s), nil
	default:
		return "", &InvalidTypeError{Value: s}
	}
}

// InvalidTypeError reports an unrecognized --solver value.
type InvalidTypeError struct{ Value string }

func (e *InvalidTypeError) Error() string {
	return "solver: unknown solver type " + e.Value + " (want one of " + joinVariants() + ")"
}

func joinVariants() string {
	vs := Variants()
	out := vs[0]
	for _, v := range vs[1:] {
		out += ", " + v
	}
	return out
}
