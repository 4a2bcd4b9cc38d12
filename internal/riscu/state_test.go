package riscu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

func TestStoreConcreteOnZeroRegisterIsNoop(t *testing.T) {
	s := NewState(0, 0, 64)
	s.StoreConcrete(Zero, bitvector.FromUint64(42))
	assert.Equal(t, bitvector.Zero, s.Reg[Zero])
	assert.False(t, s.IsRegSymbolic(Zero))
}

func TestStoreSymbolicThenConcreteConcretizes(t *testing.T) {
	s := NewState(0, 0, 64)
	s.StoreSymbolic(5, 3)
	require.True(t, s.IsRegSymbolic(5))

	s.StoreConcrete(5, bitvector.FromUint64(7))
	assert.False(t, s.IsRegSymbolic(5))
	assert.Equal(t, bitvector.FromUint64(7), s.Reg[5])
}

func TestRegSymbolPanicsOnConcreteRegister(t *testing.T) {
	s := NewState(0, 0, 64)
	assert.Panics(t, func() { s.RegSymbol(5) })
}

func TestForkIsIndependentOfParent(t *testing.T) {
	parent := NewState(0, 0, 64)
	parent.StoreConcrete(1, bitvector.FromUint64(10))
	parent.StoreMemConcrete(0, bitvector.FromUint64(99))

	child := parent.Fork(1)
	child.StoreConcrete(1, bitvector.FromUint64(20))
	child.StoreMemConcrete(8, bitvector.FromUint64(123))

	assert.Equal(t, bitvector.FromUint64(10), parent.Reg[1])
	assert.Equal(t, bitvector.FromUint64(20), child.Reg[1])
	assert.False(t, parent.IsMemSymbolic(8))
	_, parentHasChildAddr := parent.MemSym[8]
	assert.False(t, parentHasChildAddr)
}

func TestMemConcreteRoundTrip(t *testing.T) {
	s := NewState(0, 0, 64)
	v := bitvector.FromUint64(0xDEADBEEFCAFEBABE)
	s.StoreMemConcrete(16, v)
	assert.Equal(t, v, s.LoadMemConcrete(16))
	assert.False(t, s.IsMemSymbolic(16))
}

func TestStoreMemConcreteClearsOverlay(t *testing.T) {
	s := NewState(0, 0, 64)
	s.StoreMemSymbolic(8, 4)
	require.True(t, s.IsMemSymbolic(8))
	s.StoreMemConcrete(8, bitvector.FromUint64(1))
	assert.False(t, s.IsMemSymbolic(8))
}

func TestPathConditionUnsetInitially(t *testing.T) {
	s := NewState(0, 0, 64)
	assert.False(t, s.HasPathCondition())
	s.SetPathCondition(5)
	assert.True(t, s.HasPathCondition())
	assert.Equal(t, formula.SymbolId(5), s.PathCondition)
}
