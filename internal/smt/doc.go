// Package smt implements the "external solver" backend: it serializes a
// formula as an SMT-LIB QF_BV push/pop-scoped query to a writable sink
// instead of solving it in-process. It never reads a reply — Solve always
// answers Unknown, a documented limitation: wiring up an actual SMT-LIB
// reply channel is left for a future backend.
package smt
