package rarity

import "fmt"

// Mean selects how a state's per-round score is aggregated over the
// fingerprint counts it touched.
type Mean string

const (
	Arithmetic Mean = "arithmetic"
	Harmonic   Mean = "harmonic"
)

// Means lists the CLI-visible values for --mean.
func Means() []string { return []string{string(Arithmetic), string(Harmonic)} }

// ParseMean validates a CLI --mean value.
func ParseMean(s string) (Mean, error) {
	switch Mean(s) {
	case Arithmetic, Harmonic:
		return Mean(s), nil
	default:
		return "", fmt.Errorf("rarity: unknown mean %q (want one of %s, %s)", s, Arithmetic, Harmonic)
	}
}

// Config is the rarity driver's configuration, validated once at the CLI
// boundary before the driver ever runs.
type Config struct {
	MemorySizeMiB  uint64
	StepSize       int
	AmountOfStates int
	Selection      int
	Iterations     int
	CopyInitRatio  float64
	Mean           Mean
	Seed           uint64
}

// Validate enforces the invariants the CLI boundary must check before the
// driver ever runs.
func (c Config) Validate() error {
	if c.MemorySizeMiB < 1 || c.MemorySizeMiB > 1024 {
		return fmt.Errorf("rarity: memory_size must be in [1, 1024] MiB, got %d", c.MemorySizeMiB)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("rarity: step_size must be positive, got %d", c.StepSize)
	}
	if c.AmountOfStates <= 0 {
		return fmt.Errorf("rarity: amount_of_states must be positive, got %d", c.AmountOfStates)
	}
	if c.Selection <= 0 || c.Selection > c.AmountOfStates {
		return fmt.Errorf("rarity: selection must be in (0, amount_of_states=%d], got %d", c.AmountOfStates, c.Selection)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("rarity: iterations must be positive, got %d", c.Iterations)
	}
	if c.CopyInitRatio < 0 || c.CopyInitRatio > 1 {
		return fmt.Errorf("rarity: copy_init_ratio must be in [0, 1], got %f", c.CopyInitRatio)
	}
	switch c.Mean {
	case Arithmetic, Harmonic:
	default:
		return fmt.Errorf("rarity: unknown mean %q", c.Mean)
	}
	return nil
}
