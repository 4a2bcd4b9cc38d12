package riscu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleFollowsFallthrough(t *testing.T) {
	mem := make([]byte, 32)
	addiWord := func(rd, rs1 uint64, imm int64) uint32 {
		return uint32(imm&0xFFF)<<20 | uint32(rs1)<<15 | uint32(rd)<<7 | 0x13
	}
	put := func(addr uint64, w uint32) {
		mem[addr] = byte(w)
		mem[addr+1] = byte(w >> 8)
		mem[addr+2] = byte(w >> 16)
		mem[addr+3] = byte(w >> 24)
	}
	put(0, addiWord(1, 0, 1))
	put(4, ecallWordForTest())

	instrs := Disassemble(mem, 0)
	assert.Len(t, instrs, 2)
	assert.Equal(t, Addi, instrs[0].Op)
	assert.Equal(t, Ecall, instrs[4].Op)
}

func TestDisassembleSkipsUndecodableEntry(t *testing.T) {
	mem := make([]byte, 16)
	mem[0] = 0xFF
	mem[1] = 0xFF
	mem[2] = 0xFF
	mem[3] = 0xFF
	instrs := Disassemble(mem, 0)
	assert.Empty(t, instrs)
}

func TestDisassembleDoesNotFollowJalrTarget(t *testing.T) {
	mem := make([]byte, 16)
	// jalr x0, 0(x1): funct3=0, opcode=0x67
	word := uint32(0)<<20 | uint32(1)<<15 | uint32(0)<<7 | 0x67
	mem[0] = byte(word)
	mem[1] = byte(word >> 8)
	mem[2] = byte(word >> 16)
	mem[3] = byte(word >> 24)

	instrs := Disassemble(mem, 0)
	assert.Len(t, instrs, 1)
	assert.Equal(t, Jalr, instrs[0].Op)
}

func ecallWordForTest() uint32 { return 0x73 }
