package smt

import (
	"fmt"

	"github.com/saraseidl/monster/internal/bitvector"
)

// toSMT is the fixed SMT-LIB token for each bitvector.Operator. It is a
// total function: adding a new Operator without updating this mapping
// should fail at test time, which the operator-coverage test in
// emitter_test.go enforces by iterating the full operator range.
func toSMT(op bitvector.Operator) string {
	switch op {
	case bitvector.Add:
		return "bvadd"
	case bitvector.Sub:
		return "bvsub"
	case bitvector.Not:
		return "not"
	case bitvector.Mul:
		return "bvmul"
	case bitvector.Divu:
		return "bvudiv"
	case bitvector.Remu:
		return "bvurem"
	case bitvector.Equals:
		return "="
	case bitvector.BitwiseAnd:
		return "bvand"
	case bitvector.Sltu:
		return "bvult"
	default:
		panic(fmt.Sprintf("smt: no SMT-LIB token registered for operator %s", op))
	}
}
