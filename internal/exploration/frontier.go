package exploration

// PathFrontier holds the set of runnable path ids pending advancement,
// each tagged with its creation sequence number, and defers the choice of
// which one runs next to a Strategy. It is generic over the id type the
// driver uses to name a path (e.g. an index into its own state slice) so
// exploration never needs to know about riscu.State.
type PathFrontier[ID any] struct {
	ids   []ID
	pcs   []uint64
	seqs  []int
	nextSeq int
}

// NewPathFrontier returns an empty frontier.
func NewPathFrontier[ID any]() *PathFrontier[ID] {
	return &PathFrontier[ID]{}
}

// Push adds a new pending path at the given pc, assigning it the next
// creation sequence number, and returns that sequence number.
func (f *PathFrontier[ID]) Push(id ID, pc uint64) int {
	seq := f.nextSeq
	f.nextSeq++
	f.ids = append(f.ids, id)
	f.pcs = append(f.pcs, pc)
	f.seqs = append(f.seqs, seq)
	return seq
}

// Len reports how many paths are pending.
func (f *PathFrontier[ID]) Len() int { return len(f.ids) }

// UpdatePC updates the PC a pending path is recorded at, e.g. after
// advancing it without removing it from the frontier (not used by the
// current driver, which always pops-advance-pushes, but kept so a future
// driver variant that re-enqueues in place does not need a frontier
// redesign).
func (f *PathFrontier[ID]) UpdatePC(i int, pc uint64) { f.pcs[i] = pc }

// Take asks strategy to choose among the pending paths, removes the chosen
// one from the frontier (via swap-with-last, frontier order otherwise
// carries no meaning), and returns its id, pc and creation sequence.
// Panics if the frontier is empty.
func (f *PathFrontier[ID]) Take(strategy Strategy) (id ID, pc uint64, seq int) {
	if f.Len() == 0 {
		panic("exploration: Take called on an empty frontier")
	}
	candidates := make([]Candidate, f.Len())
	for i := range f.ids {
		candidates[i] = Candidate{PC: f.pcs[i], Seq: f.seqs[i]}
	}
	i := strategy.Choose(candidates)

	id, pc, seq = f.ids[i], f.pcs[i], f.seqs[i]

	last := f.Len() - 1
	f.ids[i], f.ids[last] = f.ids[last], f.ids[i]
	f.pcs[i], f.pcs[last] = f.pcs[last], f.pcs[i]
	f.seqs[i], f.seqs[last] = f.seqs[last], f.seqs[i]
	f.ids = f.ids[:last]
	f.pcs = f.pcs[:last]
	f.seqs = f.seqs[:last]

	return id, pc, seq
}
