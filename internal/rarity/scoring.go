package rarity

import "math"

// ComputeMean aggregates a member's per-round fingerprint counts into the
// single score the selection step compares: lower is rarer, rarer is
// better. A member that touched nothing this round (it
// halted before its first step) scores +Inf, the worst possible score,
// so it is always the first dropped when selection trims the population.
func ComputeMean(counts []uint64, m Mean) float64 {
	if len(counts) == 0 {
		return math.Inf(1)
	}
	switch m {
	case Harmonic:
		var reciprocalSum float64
		for _, c := range counts {
			reciprocalSum += 1 / float64(c)
		}
		return float64(len(counts)) / reciprocalSum
	default: // Arithmetic
		var sum float64
		for _, c := range counts {
			sum += float64(c)
		}
		return sum / float64(len(counts))
	}
}
