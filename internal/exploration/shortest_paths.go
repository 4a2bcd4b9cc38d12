package exploration

// ShortestPaths prefers the candidate whose current PC has the smallest
// precomputed distance to the nearest program exit, breaking ties by the
// lowest Seq, i.e. the entry pushed onto the frontier earliest (see
// Candidate: that is push order, not path creation order when the driver
// re-pushes a path after each step). Addresses missing from Distances (the cfg
// package leaves unreachable addresses out of the map) are treated as
// maximally far.
type ShortestPaths struct {
	Distances map[uint64]int
}

func NewShortestPaths(distances map[uint64]int) *ShortestPaths {
	return &ShortestPaths{Distances: distances}
}

func (s *ShortestPaths) Name() string { return "shortest-paths" }

func (s *ShortestPaths) Choose(frontier []Candidate) int {
	best := 0
	bestDist, bestKnown := s.distance(frontier[0].PC)
	for i := 1; i < len(frontier); i++ {
		d, known := s.distance(frontier[i].PC)
		switch {
		case known && !bestKnown:
			best, bestDist, bestKnown = i, d, known
		case known == bestKnown && d < bestDist:
			best, bestDist, bestKnown = i, d, known
		case known == bestKnown && d == bestDist && frontier[i].Seq < frontier[best].Seq:
			best = i
		}
	}
	return best
}

func (s *ShortestPaths) distance(pc uint64) (int, bool) {
	d, ok := s.Distances[pc]
	return d, ok
}
