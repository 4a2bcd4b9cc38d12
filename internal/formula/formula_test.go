package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraseidl/monster/internal/bitvector"
)

func TestAddConstantInternsSameValue(t *testing.T) {
	f := New()
	a := f.AddConstant(bitvector.FromUint64(42))
	b := f.AddConstant(bitvector.FromUint64(42))
	c := f.AddConstant(bitvector.FromUint64(7))

	assert.Equal(t, a, b, "same constant value must get the same id")
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, f.Len(), "interning must not grow the node array twice")
}

func TestAddInputNeverInterned(t *testing.T) {
	f := New()
	a := f.AddInput("x")
	b := f.AddInput("x")
	assert.NotEqual(t, a, b, "two reads of the same symbolic variable are distinct nodes")
}

func TestChildIdsMustPrecedeParent(t *testing.T) {
	f := New()
	x := f.AddInput("x")
	c := f.AddConstant(bitvector.FromUint64(42))
	eq := f.AddBinary(bitvector.Equals, x, c)

	assert.Less(t, int(x), int(eq))
	assert.Less(t, int(c), int(eq))
}

func TestDanglingChildIDPanics(t *testing.T) {
	f := New()
	f.AddInput("x")
	assert.Panics(t, func() {
		f.AddBinary(bitvector.Equals, 0, SymbolId(99))
	})
}

func TestConjoinExtendsRoot(t *testing.T) {
	f := New()
	x := f.AddInput("x")
	ten := f.AddConstant(bitvector.FromUint64(10))
	pc := f.AddBinary(bitvector.Sltu, x, ten)
	f.SetRoot(pc)

	more := f.AddBinary(bitvector.Equals, x, ten)
	newRoot := f.Conjoin(more)

	require.Equal(t, newRoot, f.Root())
}

func TestRootPanicsBeforeSet(t *testing.T) {
	f := New()
	f.AddInput("x")
	assert.Panics(t, func() { f.Root() })
}

func TestUnaryRejectsBinaryOperator(t *testing.T) {
	f := New()
	x := f.AddInput("x")
	assert.Panics(t, func() { f.AddUnary(bitvector.Add, x) })
}

func TestBinaryRejectsUnaryOperator(t *testing.T) {
	f := New()
	x := f.AddInput("x")
	y := f.AddInput("y")
	assert.Panics(t, func() { f.AddBinary(bitvector.Not, x, y) })
}
