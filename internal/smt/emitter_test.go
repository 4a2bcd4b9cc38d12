package smt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/solver"
)

// Binary(Equals, Input("x"), Constant(42)) emits three declarations and
// exactly one constant assertion and one equality assertion, in post-order,
// between (push 1) and (check-sat).
func TestSolveEmitsDeclarationsInPostOrder(t *testing.T) {
	f := formula.New()
	x := f.AddInput("x")
	c := f.AddConstant(bitvector.FromUint64(42))
	root := f.AddBinary(bitvector.Equals, x, c)
	f.SetRoot(root)

	var buf bytes.Buffer
	e, err := NewEmitter(&buf)
	require.NoError(t, err)

	res, err := e.Solve(f)
	require.NoError(t, err)
	assert.Equal(t, solver.Unknown, res.Outcome)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "(set-logic QF_BV)\n"))
	assert.Contains(t, out, "(push 1)\n")
	assert.Contains(t, out, `(declare-fun x0 () (_ BitVec 64)); "x"`)
	assert.Contains(t, out, "(declare-fun x1 () (_ BitVec 64))\n(assert (= x1 (_ bv42 64)))")
	assert.Contains(t, out, "(declare-fun x2 () (_ BitVec 64))\n(assert (= x2 (= x0 x1)))")
	assert.Contains(t, out, "(check-sat)\n(get-model)\n(pop 1)")

	// post-order: x0's declaration precedes x1's, which precedes x2's.
	i0 := strings.Index(out, "x0 ()")
	i1 := strings.Index(out, "x1 ()")
	i2 := strings.Index(out, "x2 ()")
	assert.Less(t, i0, i1)
	assert.Less(t, i1, i2)
}

// An Input feeding two Binary parents must be declared exactly once.
func TestSharedInputDeclaredOnce(t *testing.T) {
	f := formula.New()
	y := f.AddInput("y")
	ten := f.AddConstant(bitvector.FromUint64(10))
	left := f.AddBinary(bitvector.Sltu, y, ten)
	right := f.AddBinary(bitvector.Equals, y, ten)
	root := f.AddBinary(bitvector.BitwiseAnd, left, right)
	f.SetRoot(root)

	var buf bytes.Buffer
	e, err := NewEmitter(&buf)
	require.NoError(t, err)
	_, err = e.Solve(f)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "declare-fun x0 "))
}

// Emitting the same formula twice into empty sinks yields byte-identical
// output.
func TestEmitterDeterministic(t *testing.T) {
	build := func() *formula.Formula {
		f := formula.New()
		x := f.AddInput("x")
		c := f.AddConstant(bitvector.FromUint64(7))
		root := f.AddBinary(bitvector.Sltu, x, c)
		f.SetRoot(root)
		return f
	}

	var buf1, buf2 bytes.Buffer
	e1, err := NewEmitter(&buf1)
	require.NoError(t, err)
	_, err = e1.Solve(build())
	require.NoError(t, err)

	e2, err := NewEmitter(&buf2)
	require.NoError(t, err)
	_, err = e2.Solve(build())
	require.NoError(t, err)

	assert.Equal(t, buf1.String(), buf2.String())
}

// Push/pop stays balanced even when the sink fails once mid-query.
// failingAfterNWriter accepts n writes, fails the next one, and accepts
// every write after that.
type failingAfterNWriter struct {
	n    int
	buf  bytes.Buffer
	fail bool
}

func (w *failingAfterNWriter) Write(p []byte) (int, error) {
	if w.n == 0 && !w.fail {
		w.fail = true
		return 0, assert.AnError
	}
	w.n--
	return w.buf.Write(p)
}

func TestPushPopBalanceOnWriteFailure(t *testing.T) {
	f := formula.New()
	x := f.AddInput("x")
	c := f.AddConstant(bitvector.FromUint64(1))
	root := f.AddBinary(bitvector.Equals, x, c)
	f.SetRoot(root)

	w := &failingAfterNWriter{n: 2} // succeed on set-logic + push, then fail the next write
	e, err := NewEmitter(w)
	require.NoError(t, err)

	_, err = e.Solve(f)
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrTransport)

	out := w.buf.String()
	assert.Equal(t, 1, strings.Count(out, "(push 1)"))
	assert.Equal(t, strings.Count(out, "(push 1)"), strings.Count(out, "(pop 1)"))
}

func TestEmitterNewWritesSetLogicFirst(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewEmitter(&buf)
	require.NoError(t, err)
	assert.Equal(t, "(set-logic QF_BV)\n", buf.String())
}

// Every BVOperator maps to a token; an operator absent from toSMT panics
// rather than silently emitting nothing.
func TestOperatorMappingIsTotal(t *testing.T) {
	for op := bitvector.Add; op <= bitvector.Sltu; op++ {
		assert.NotPanics(t, func() { toSMT(op) }, "operator %s has no SMT-LIB token", op)
	}
}
