package rarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/riscu"
)

func TestFingerprintOfIsStableForIdenticalRegisterFiles(t *testing.T) {
	a := riscu.NewState(0, 0, 64)
	b := riscu.NewState(1, 0, 64)
	a.Reg[5] = bitvector.FromUint64(42)
	b.Reg[5] = bitvector.FromUint64(42)

	assert.Equal(t, FingerprintOf(a), FingerprintOf(b))
}

func TestFingerprintOfDiffersWhenARegisterDiffers(t *testing.T) {
	a := riscu.NewState(0, 0, 64)
	b := riscu.NewState(1, 0, 64)
	a.Reg[5] = bitvector.FromUint64(42)
	b.Reg[5] = bitvector.FromUint64(43)

	assert.NotEqual(t, FingerprintOf(a), FingerprintOf(b))
}

func TestFingerprintOfIgnoresStateID(t *testing.T) {
	a := riscu.NewState(7, 0, 64)
	b := riscu.NewState(8, 0, 64)

	assert.Equal(t, FingerprintOf(a), FingerprintOf(b))
}
