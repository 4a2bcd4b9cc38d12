package solver

import "errors"

// ErrSatUnknown names an inconclusive query as an error value. No Solver in
// this module returns it: backends report an inconclusive query as a Result
// with Outcome Unknown, which the symbolic driver records as a finding
// before pruning that branch side.
var ErrSatUnknown = errors.New("solver: satisfiability unknown")

// ErrTransport wraps a transport-level failure: the emitter's sink failed
// to write, or the in-process solver crashed. Transport errors terminate
// the driver, unlike an Unknown outcome.
var ErrTransport = errors.New("solver: transport error")
