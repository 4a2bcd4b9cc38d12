package exploration

// Candidate is the minimal view of a pending symbolic state a Strategy
// needs to rank it: its current program counter and Seq, the sequence
// number the PathFrontier assigned when the entry was pushed. Seq orders
// pushes, not path creation: a driver that takes a path and pushes it back
// after every step (as internal/symbolic's does) gives it a new, higher Seq
// each time. The driver owns the real riscu.State; Strategy never sees it,
// so a strategy cannot depend on anything beyond PC and Seq.
type Candidate struct {
	PC  uint64
	Seq int
}

// Strategy chooses which pending state advances next. Choose is given the
// current frontier and must return the index of the chosen candidate; it
// is never called with an empty slice.
type Strategy interface {
	Name() string
	Choose(frontier []Candidate) int
}

// Type is the tagged variant selecting which Strategy to construct.
type Type string

const (
	ShortestPathsType Type = "shortest-paths"
	CoinFlipType      Type = "coin-flip"
)

// Variants lists the CLI-visible values for --strategy.
func Variants() []string { return []string{string(ShortestPathsType), string(CoinFlipType)} }

// ParseType validates a CLI --strategy value.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case ShortestPathsType, CoinFlipType:
		return Type(s), nil
	default:
		return "", &InvalidTypeError{Value: s}
	}
}

// InvalidTypeError reports an unrecognized --strategy value.
type InvalidTypeError struct{ Value string }

func (e *InvalidTypeError) Error() string {
	vs := Variants()
	return "exploration: unknown strategy " + e.Value + " (want one of " + vs[0] + ", " + vs[1] + ")"
}
