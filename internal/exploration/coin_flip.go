package exploration

import "math/rand/v2"

// CoinFlip chooses uniformly at random among the frontier, using a
// seedable PRNG so a run is reproducible given a fixed seed.
type CoinFlip struct {
	rng *rand.Rand
}

// NewCoinFlip seeds the strategy's PRNG deterministically from seed.
func NewCoinFlip(seed uint64) *CoinFlip {
	return &CoinFlip{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (c *CoinFlip) Name() string { return "coin-flip" }

func (c *CoinFlip) Choose(frontier []Candidate) int {
	return c.rng.IntN(len(frontier))
}
