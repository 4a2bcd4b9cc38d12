package riscu

// RISC-U instructions are always 4 bytes: a RISC-U-targeting compiler never
// emits the compressed (RVC) 2-byte instruction encoding.

const (
	opLoad   = 0x03
	opOpImm  = 0x13
	opAuipc  = 0x17 // unused by RISC-U, listed only to keep the opcode map legible
	opStore  = 0x23
	opOp     = 0x33
	opLui    = 0x37
	opBranch = 0x63
	opJalr   = 0x67
	opJal    = 0x6F
	opSystem = 0x73
)

// Decode decodes the 4-byte little-endian RISC-U instruction word at pc.
func Decode(pc uint64, word uint32) (*Instruction, error) {
	opcode := word & 0x7f
	rd := uint64(word >> 7 & 0x1f)
	funct3 := word >> 12 & 0x7
	rs1 := uint64(word >> 15 & 0x1f)
	rs2 := uint64(word >> 20 & 0x1f)
	funct7 := word >> 25 & 0x7f

	switch opcode {
	case opLui:
		return &Instruction{Op: Lui, RD: rd, Imm: signExtend(uint64(word&0xFFFFF000), 31), Raw: word}, nil

	case opOpImm:
		if funct3 != 0x0 {
			return nil, &DecodeError{PC: pc, Word: word}
		}
		imm := signExtend(uint64(word>>20), 11)
		return &Instruction{Op: Addi, RS1: rs1, RD: rd, Imm: imm, Raw: word}, nil

	case opOp:
		imm := int64(0)
		switch {
		case funct3 == 0x0 && funct7 == 0x00:
			return &Instruction{Op: Add, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		case funct3 == 0x0 && funct7 == 0x20:
			return &Instruction{Op: Sub, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		case funct3 == 0x3 && funct7 == 0x00:
			return &Instruction{Op: Sltu, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		case funct3 == 0x0 && funct7 == 0x01:
			return &Instruction{Op: Mul, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		case funct3 == 0x5 && funct7 == 0x01:
			return &Instruction{Op: Divu, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		case funct3 == 0x7 && funct7 == 0x01:
			return &Instruction{Op: Remu, RS1: rs1, RS2: rs2, RD: rd, Imm: imm, Raw: word}, nil
		default:
			return nil, &DecodeError{PC: pc, Word: word}
		}

	case opLoad:
		if funct3 != 0x3 { // only LD (doubleword) is in RISC-U
			return nil, &DecodeError{PC: pc, Word: word}
		}
		imm := signExtend(uint64(word>>20), 11)
		return &Instruction{Op: Ld, RS1: rs1, RD: rd, Imm: imm, Raw: word}, nil

	case opStore:
		if funct3 != 0x3 { // only SD (doubleword) is in RISC-U
			return nil, &DecodeError{PC: pc, Word: word}
		}
		imm := signExtend(uint64(word>>25&0x7f)<<5|uint64(word>>7&0x1f), 11)
		return &Instruction{Op: Sd, RS1: rs1, RS2: rs2, Imm: imm, Raw: word}, nil

	case opBranch:
		if funct3 != 0x0 { // only BEQ is in RISC-U
			return nil, &DecodeError{PC: pc, Word: word}
		}
		imm := signExtend(
			uint64(word>>31&0x1)<<12|
				uint64(word>>7&0x1)<<11|
				uint64(word>>25&0x3f)<<5|
				uint64(word>>8&0xf)<<1,
			12)
		return &Instruction{Op: Beq, RS1: rs1, RS2: rs2, Imm: imm, Raw: word}, nil

	case opJal:
		imm := signExtend(
			uint64(word>>31&0x1)<<20|
				uint64(word>>12&0xff)<<12|
				uint64(word>>20&0x1)<<11|
				uint64(word>>21&0x3ff)<<1,
			20)
		return &Instruction{Op: Jal, RD: rd, Imm: imm, Raw: word}, nil

	case opJalr:
		if funct3 != 0x0 {
			return nil, &DecodeError{PC: pc, Word: word}
		}
		imm := signExtend(uint64(word>>20), 11)
		return &Instruction{Op: Jalr, RS1: rs1, RD: rd, Imm: imm, Raw: word}, nil

	case opSystem:
		if funct3 != 0x0 || word>>20 != 0 {
			return nil, &DecodeError{PC: pc, Word: word}
		}
		return &Instruction{Op: Ecall, Raw: word}, nil

	default:
		return nil, &DecodeError{PC: pc, Word: word}
	}
}

// signExtend sign-extends the (bit+1)-bit value v to a full 64-bit int64,
// via a shift-based form rather than a precomputed table, since this only
// ever needs to produce an int64 immediate.
func signExtend(v uint64, bit uint) int64 {
	shift := 63 - bit
	return int64(v<<shift) >> shift
}
