// Package solver defines the uniform query contract every symbolic-execution
// backend answers: given a formula, return Sat with a concrete Assignment,
// Unsat, Unknown, or a transport error. internal/smt and the bundled
// reference "monster" solver both implement Solver.
package solver
