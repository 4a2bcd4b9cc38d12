// Package exploration implements the symbolic driver's pluggable "choose
// next state" strategies: ShortestPaths, which prefers the state closest
// to a program exit in the precomputed control-flow graph, and CoinFlip,
// uniform random selection with a seedable PRNG.
package exploration
