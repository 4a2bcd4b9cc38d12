package riscu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

func mustAssemble(t *testing.T, s *State, pc uint64, word uint32) {
	t.Helper()
	s.Mem[pc] = byte(word)
	s.Mem[pc+1] = byte(word >> 8)
	s.Mem[pc+2] = byte(word >> 16)
	s.Mem[pc+3] = byte(word >> 24)
}

func TestStepAddiConcrete(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	// addi x1, x0, 5
	mustAssemble(t, s, 0, 0x00500093)

	require.NoError(t, Step(s, f, nil))
	assert.Equal(t, bitvector.FromUint64(5), s.Reg[1])
	assert.Equal(t, uint64(4), s.PC)
	assert.False(t, s.IsRegSymbolic(1))
}

func TestStepAddSymbolicPropagates(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	in := f.AddInput("x")
	s.StoreSymbolic(2, in)
	s.Reg[3] = bitvector.FromUint64(1)

	// add x1, x2, x3
	mustAssemble(t, s, 0, 0x003100B3)
	require.NoError(t, Step(s, f, nil))

	require.True(t, s.IsRegSymbolic(1))
	assert.Equal(t, formula.KindBinary, f.KindOf(s.RegSymbol(1)))
}

func TestStepDivuByZeroTraps(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	s.Reg[2] = bitvector.FromUint64(10)
	s.Reg[3] = bitvector.Zero
	// divu x1, x2, x3
	mustAssemble(t, s, 0, 0x023150B3)

	err := Step(s, f, nil)
	require.Error(t, err)
	var trap *GuestTrap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, TrapDivisionByZero, trap.Kind)
}

func TestStepLdMisalignedTraps(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	s.Reg[2] = bitvector.FromUint64(1) // odd, not 8-byte aligned
	// ld x1, 0(x2)
	mustAssemble(t, s, 0, 0x00013083)

	err := Step(s, f, nil)
	require.Error(t, err)
	var trap *GuestTrap
	require.ErrorAs(t, err, &trap)
	assert.Equal(t, TrapMisalignedAccess, trap.Kind)
}

func TestStepSdThenLdRoundTrip(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	s.Reg[2] = bitvector.FromUint64(8)
	s.Reg[3] = bitvector.FromUint64(0xABCD)
	// sd x3, 0(x2)
	mustAssemble(t, s, 0, 0x00313023)
	require.NoError(t, Step(s, f, nil))

	s.Reg[2] = bitvector.FromUint64(8)
	// ld x1, 0(x2)
	mustAssemble(t, s, 4, 0x00013083)
	require.NoError(t, Step(s, f, nil))

	assert.Equal(t, bitvector.FromUint64(0xABCD), s.Reg[1])
}

func TestStepBeqSymbolicConditionIsDriverDecision(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	in := f.AddInput("x")
	s.StoreSymbolic(2, in)
	s.Reg[3] = bitvector.Zero
	// beq x2, x3, 0
	mustAssemble(t, s, 0, 0x00310063)

	err := Step(s, f, nil)
	require.Error(t, err)
	assert.True(t, IsSymbolicBranch(err))
}

func TestStepEcallExit(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	s.Reg[a7] = bitvector.FromUint64(93) // sysExit
	s.Reg[a0] = bitvector.FromUint64(7)
	// ecall
	mustAssemble(t, s, 0, 0x00000073)

	err := Step(s, f, nil)
	require.Error(t, err)
	var exit *ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, int64(7), exit.Status)
}

func TestStepJalStoresReturnAddressAndJumps(t *testing.T) {
	s := NewState(0, 0, 64)
	f := formula.New()
	// jal x1, 8
	mustAssemble(t, s, 0, 0x008000EF)

	require.NoError(t, Step(s, f, nil))
	assert.Equal(t, bitvector.FromUint64(4), s.Reg[1])
	assert.Equal(t, uint64(8), s.PC)
}
