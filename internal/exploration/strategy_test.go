package exploration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortestPathsPrefersSmallestDistance(t *testing.T) {
	s := NewShortestPaths(map[uint64]int{10: 3, 20: 1, 30: 5})
	frontier := []Candidate{{PC: 10, Seq: 0}, {PC: 20, Seq: 1}, {PC: 30, Seq: 2}}
	assert.Equal(t, 1, s.Choose(frontier))
}

func TestShortestPathsBreaksTiesByCreationOrder(t *testing.T) {
	s := NewShortestPaths(map[uint64]int{10: 2, 20: 2})
	frontier := []Candidate{{PC: 20, Seq: 5}, {PC: 10, Seq: 1}}
	assert.Equal(t, 1, s.Choose(frontier))
}

func TestShortestPathsKnownDistanceBeatsUnknown(t *testing.T) {
	s := NewShortestPaths(map[uint64]int{10: 100})
	frontier := []Candidate{{PC: 999, Seq: 0}, {PC: 10, Seq: 1}}
	assert.Equal(t, 1, s.Choose(frontier))
}

func TestCoinFlipIsDeterministicForAFixedSeed(t *testing.T) {
	frontier := make([]Candidate, 8)
	for i := range frontier {
		frontier[i] = Candidate{PC: uint64(i), Seq: i}
	}

	a := NewCoinFlip(42)
	b := NewCoinFlip(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Choose(frontier), b.Choose(frontier))
	}
}

func TestCoinFlipAlwaysReturnsAValidIndex(t *testing.T) {
	c := NewCoinFlip(7)
	frontier := []Candidate{{PC: 1}, {PC: 2}, {PC: 3}}
	for i := 0; i < 50; i++ {
		idx := c.Choose(frontier)
		assert.True(t, idx >= 0 && idx < len(frontier))
	}
}

func TestPathFrontierPushTakeRoundTrip(t *testing.T) {
	f := NewPathFrontier[string]()
	f.Push("a", 10)
	f.Push("b", 20)
	assert.Equal(t, 2, f.Len())

	s := NewShortestPaths(map[uint64]int{10: 0, 20: 5})
	id, pc, seq := f.Take(s)
	assert.Equal(t, "a", id)
	assert.Equal(t, uint64(10), pc)
	assert.Equal(t, 0, seq)
	assert.Equal(t, 1, f.Len())
}

func TestPathFrontierTakePanicsWhenEmpty(t *testing.T) {
	f := NewPathFrontier[int]()
	assert.Panics(t, func() {
		f.Take(NewCoinFlip(1))
	})
}

func TestParseTypeAcceptsBothVariants(t *testing.T) {
	got, err := ParseType("shortest-paths")
	assert.NoError(t, err)
	assert.Equal(t, ShortestPathsType, got)

	got, err = ParseType("coin-flip")
	assert.NoError(t, err)
	assert.Equal(t, CoinFlipType, got)
}

func TestParseTypeRejectsUnknownValue(t *testing.T) {
	_, err := ParseType("random-walk")
	assert.Error(t, err)
}
