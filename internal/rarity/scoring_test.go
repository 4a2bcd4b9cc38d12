package rarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMeanArithmetic(t *testing.T) {
	got := ComputeMean([]uint64{1, 2, 3}, Arithmetic)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestComputeMeanHarmonic(t *testing.T) {
	got := ComputeMean([]uint64{1, 2, 4}, Harmonic)
	// harmonic mean of 1,2,4 = 3 / (1/1 + 1/2 + 1/4) = 3 / 1.75
	assert.InDelta(t, 3/1.75, got, 1e-9)
}

func TestComputeMeanHarmonicPunishesOneFrequentFingerprintLessThanArithmetic(t *testing.T) {
	// A member that touched one very common fingerprint (count 100) and one
	// rare one (count 1) should score worse (higher) under the arithmetic
	// mean than under the harmonic mean, since harmonic mean is dominated
	// by the smallest value.
	counts := []uint64{1, 100}
	assert.Less(t, ComputeMean(counts, Harmonic), ComputeMean(counts, Arithmetic))
}

func TestComputeMeanOfEmptyIsPositiveInfinity(t *testing.T) {
	assert.True(t, math.IsInf(ComputeMean(nil, Arithmetic), 1))
	assert.True(t, math.IsInf(ComputeMean(nil, Harmonic), 1))
}
