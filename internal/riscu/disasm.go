package riscu

// Disassemble walks mem from entry, following every statically-known
// control-flow edge (fallthrough, Beq's both sides, Jal's target, and the
// instruction after an Ecall, since a syscall always returns control to
// its caller) to discover every reachable instruction address. It is built
// as a worklist over Decode rather than a blind linear sweep over every
// 4-byte boundary, since RISC-U text and data share one flat memory image
// and a blind sweep would misdecode data as instructions. An address that
// fails to decode (data, or out of bounds) is simply left out of the
// result rather than reported as an error — the caller only ever wanted
// the decodable subset.
func Disassemble(mem []byte, entry uint64) map[uint64]*Instruction {
	instrs := make(map[uint64]*Instruction)
	visited := make(map[uint64]bool)
	worklist := []uint64{entry}

	for len(worklist) > 0 {
		addr := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if visited[addr] {
			continue
		}
		visited[addr] = true

		if addr+4 > uint64(len(mem)) {
			continue
		}
		word := uint32(mem[addr]) | uint32(mem[addr+1])<<8 |
			uint32(mem[addr+2])<<16 | uint32(mem[addr+3])<<24

		in, err := Decode(addr, word)
		if err != nil {
			continue
		}
		instrs[addr] = in

		switch in.Op {
		case Jal:
			worklist = append(worklist, uint64(int64(addr)+in.Imm))
		case Beq:
			worklist = append(worklist, addr+4, uint64(int64(addr)+in.Imm))
		case Jalr:
			// target is a runtime value; nothing statically reachable.
		default:
			worklist = append(worklist, addr+4)
		}
	}

	return instrs
}
