package riscu

import "fmt"

// Opcode enumerates the full RISC-U instruction set: the fixed RISC-V
// subset a RISC-U-targeting compiler emits.
type Opcode uint8

const (
	Lui Opcode = iota
	Addi
	Add
	Sub
	Mul
	Divu
	Remu
	Sltu
	Ld
	Sd
	Beq
	Jal
	Jalr
	Ecall
)

func (op Opcode) String() string {
	names := [...]string{
		"lui", "addi", "add", "sub", "mul", "divu", "remu", "sltu",
		"ld", "sd", "beq", "jal", "jalr", "ecall",
	}
	if int(op) >= len(names) {
		return fmt.Sprintf("Opcode(%d)", uint8(op))
	}
	return names[op]
}

// Instruction is a single decoded RISC-U instruction: a flat struct rather
// than one type per encoding format.
type Instruction struct {
	Op           Opcode
	RS1, RS2, RD uint64
	Imm          int64 // already sign-extended
	Raw          uint32
}

func (in *Instruction) String() string {
	return fmt.Sprintf("[ %s rs1=x%d rs2=x%d rd=x%d imm=%d raw=%#08x ]",
		in.Op, in.RS1, in.RS2, in.RD, in.Imm, in.Raw)
}
