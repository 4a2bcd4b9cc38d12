package riscu

import (
	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

// Register name constants, riscv-spec-v2.2 Table 20.1.
const (
	Zero = 0
	RA   = 1
	SP   = 2
	A0   = 10
)

// State is one path's interpreter state: 32 integer registers, a linear
// memory of the configured size, a program counter, and a symbolic overlay
// recording which register or memory doubleword currently holds a formula
// SymbolId instead of a concrete BitVector. The Formula a State's overlay
// points into is owned by the driver, not the State: the append-only,
// monotonically-identified node array is one container shared by every path
// in a run, so sibling states forked at a branch can still refer to ids
// built before the fork without copying any formula nodes — all ownership
// lives in the formula container.
type State struct {
	ID int

	Reg      [32]bitvector.BitVector
	RegSym   [32]formula.SymbolId
	regIsSym [32]bool

	PC uint64

	Mem      []byte
	MemSym   map[uint64]formula.SymbolId // keyed by 8-byte-aligned address
	MemLimit uint64                      // configured memory_size in bytes

	// PathCondition is the SymbolId of this path's current path condition
	// root in the shared Formula. Zero value (unset) means "no symbolic
	// branch taken yet" — every state starts unconstrained.
	PathCondition    formula.SymbolId
	hasPathCondition bool

	Steps int
}

// NewState returns a fresh State with pc as the entry point and a memory
// image of memLimit bytes, as the driver does at the start of a run.
func NewState(id int, pc, memLimit uint64) *State {
	return &State{
		ID:       id,
		PC:       pc,
		Mem:      make([]byte, memLimit),
		MemSym:   make(map[uint64]formula.SymbolId),
		MemLimit: memLimit,
	}
}

// Fork returns a new State that is a copy of s, as the driver does when a
// branch's both sides are satisfiable. Mem is deep-copied (each path owns
// its memory independently once it diverges); the overlay maps are copied
// too, since mutating a fork must never be observed by its sibling.
func (s *State) Fork(id int) *State {
	clone := *s
	clone.ID = id
	clone.Mem = append([]byte(nil), s.Mem...)
	clone.MemSym = make(map[uint64]formula.SymbolId, len(s.MemSym))
	for k, v := range s.MemSym {
		clone.MemSym[k] = v
	}
	return &clone
}

// SetPathCondition installs id as the state's path condition root, as the
// driver does after a successful Sat query at a branch.
func (s *State) SetPathCondition(id formula.SymbolId) {
	s.PathCondition = id
	s.hasPathCondition = true
}

// HasPathCondition reports whether the path has ever branched symbolically.
func (s *State) HasPathCondition() bool { return s.hasPathCondition }

// IsRegSymbolic reports whether register r currently holds a SymbolId
// rather than a concrete value.
func (s *State) IsRegSymbolic(r uint64) bool {
	if r == Zero {
		return false // the zero register is hard-wired concrete
	}
	return s.regIsSym[r]
}

// StoreConcrete writes a concrete value to register rd, removing any
// overlay entry for it; writing to the zero register is always a no-op.
func (s *State) StoreConcrete(rd uint64, v bitvector.BitVector) {
	if rd == Zero {
		return
	}
	s.Reg[rd] = v
	s.regIsSym[rd] = false
}

// StoreSymbolic records that register rd now holds the formula node sym.
func (s *State) StoreSymbolic(rd uint64, sym formula.SymbolId) {
	if rd == Zero {
		return
	}
	s.RegSym[rd] = sym
	s.regIsSym[rd] = true
}

// RegSymbol returns the SymbolId register r holds. Panics if the register
// is not currently symbolic — callers must check IsRegSymbolic first.
func (s *State) RegSymbol(r uint64) formula.SymbolId {
	if !s.IsRegSymbolic(r) {
		panic("riscu: RegSymbol called on a concrete register")
	}
	return s.RegSym[r]
}

// IsMemSymbolic reports whether the doubleword at addr is symbolic.
func (s *State) IsMemSymbolic(addr uint64) bool {
	_, ok := s.MemSym[addr]
	return ok
}

// MemSymbol returns the SymbolId stored at addr. Panics if addr is not
// currently symbolic.
func (s *State) MemSymbol(addr uint64) formula.SymbolId {
	sym, ok := s.MemSym[addr]
	if !ok {
		panic("riscu: MemSymbol called on a concrete address")
	}
	return sym
}

// StoreMemSymbolic records that the doubleword at addr now holds sym.
func (s *State) StoreMemSymbolic(addr uint64, sym formula.SymbolId) {
	s.MemSym[addr] = sym
}

// StoreMemConcrete writes v to the doubleword at addr and removes any
// overlay entry there.
func (s *State) StoreMemConcrete(addr uint64, v bitvector.BitVector) {
	delete(s.MemSym, addr)
	raw := v.Uint64()
	for i := 0; i < 8; i++ {
		s.Mem[addr+uint64(i)] = byte(raw >> (8 * i))
	}
}

// LoadMemConcrete reads the concrete doubleword at addr.
func (s *State) LoadMemConcrete(addr uint64) bitvector.BitVector {
	var raw uint64
	for i := 0; i < 8; i++ {
		raw |= uint64(s.Mem[addr+uint64(i)]) << (8 * i)
	}
	return bitvector.FromUint64(raw)
}
