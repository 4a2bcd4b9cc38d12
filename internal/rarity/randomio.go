package rarity

import "math/rand/v2"

// randomIO answers every guest read syscall with bytes drawn from a
// deterministic PRNG, and discards every write. This is how random
// concrete inputs reach a population member: a guest obtains its input
// through the same read() syscall the symbolic driver leaves to a
// caller-supplied riscu.GuestIO, so the rarity driver only needs to supply
// a GuestIO whose Read is a seeded random-byte source, rather than
// inventing a second input channel.
type randomIO struct {
	rng *rand.Rand
}

func newRandomIO(seed uint64) *randomIO {
	return &randomIO{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *randomIO) Read(fd int, p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.IntN(256))
	}
	return len(p), nil
}

func (r *randomIO) Write(fd int, p []byte) (int, error) {
	return len(p), nil
}
