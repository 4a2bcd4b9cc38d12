// Package symbolic implements the symbolic execution driver: a
// single-threaded cooperative loop over a frontier of path ids, each
// backed by a riscu.State and sharing one formula.Formula. At every
// symbolic branch it queries the configured solver.Solver for both sides
// of the condition, forks a new path for every satisfiable side, and
// reports a finding for every trap, non-zero exit, depth-bound hit,
// decode failure or inconclusive query.
package symbolic
