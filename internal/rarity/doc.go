// Package rarity implements the rarity simulation driver: a population of
// concretely-executing riscu.States advanced in data-parallel rounds,
// scored by how rarely the register-file fingerprints they touched have
// been seen across the whole run, with the rarest-scoring survivors kept
// and the rest refilled either by copying a survivor or restarting from
// the entry point.
package rarity
