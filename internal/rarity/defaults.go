package rarity

// Defaults holds the rarity driver's default flag values for the rarity
// command.
var Defaults = struct {
	MemorySizeMiB  uint64
	StepSize       int
	AmountOfStates int
	Selection      int
	Iterations     int
	CopyInitRatio  float64
	Mean           Mean
}{
	MemorySizeMiB:  1,
	StepSize:       1000,
	AmountOfStates: 50,
	Selection:      5,
	Iterations:     20,
	CopyInitRatio:  0.6,
	Mean:           Arithmetic,
}
