package rarity

import "github.com/saraseidl/monster/internal/riscu"

// Fingerprint is a canonical summary of an interpreter state used as a key
// into the global visit-count map. It is the FNV-1a hash of the 32-register
// file — a fold-a-fixed-size-byte-blob-into-one-comparable-key shape that
// the standard library's hash/fnv already models, so the constants are
// inlined here directly rather than wrapping an io.Writer-based hasher.
type Fingerprint uint64

// FingerprintOf observes s's register file and reduces it to a single
// comparable Fingerprint.
func FingerprintOf(s *riscu.State) Fingerprint {
	h := uint64(offsetBasis)
	for r := 0; r < 32; r++ {
		v := s.Reg[r].Uint64()
		for i := 0; i < 8; i++ {
			h ^= uint64(v>>(8*i)) & 0xff
			h *= prime
		}
	}
	return Fingerprint(h)
}

// FNV-1a 64-bit constants (hash/fnv.New64a uses the same values; inlined
// here since only the register file, not an io.Writer stream, needs
// hashing).
const (
	offsetBasis = 14695981039346656037
	prime       = 1099511628211
)
