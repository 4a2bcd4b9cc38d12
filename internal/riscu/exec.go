package riscu

import (
	"github.com/saraseidl/monster/internal/bitvector"
	"github.com/saraseidl/monster/internal/formula"
)

// Syscall numbers a RISC-U-targeting compiler's runtime emits: exit, read,
// write and brk are the only four such a compiler ever generates. Argument
// registers follow the standard RISC-V calling convention (a7 selects the
// call, a0-a2 carry arguments).
const (
	sysExit  = 93
	sysRead  = 63
	sysWrite = 64
	sysBrk   = 214
)

// Guest argument register numbers.
const (
	a0 = 10
	a1 = 11
	a2 = 12
	a7 = 17
)

// GuestIO abstracts the file descriptors a guest's read/write syscalls can
// target, so Step never touches os.Stdin/os.Stdout directly: only the CLI
// boundary owns real I/O handles.
type GuestIO interface {
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
}

// Step decodes and executes exactly one instruction at s.PC against the
// shared formula container f, advancing s.PC on success. An instruction
// with any symbolic operand builds a formula node instead of a concrete
// result and stores the resulting SymbolId in the overlay; a read of a
// symbolic memory cell by a concrete address returns the stored id
// unchanged.
//
// Step returns *GuestTrap for division-by-zero, misaligned or
// out-of-bounds access, or a symbolic address (rejected rather than
// modeled or concretized); *DecodeError for an unrecognized instruction;
// and *ExitError on a normal exit syscall.
func Step(s *State, f *formula.Formula, io GuestIO) error {
	if s.PC+4 > uint64(len(s.Mem)) {
		return &GuestTrap{Kind: TrapOutOfBounds, PC: s.PC}
	}
	word := uint32(s.Mem[s.PC]) | uint32(s.Mem[s.PC+1])<<8 |
		uint32(s.Mem[s.PC+2])<<16 | uint32(s.Mem[s.PC+3])<<24

	in, err := Decode(s.PC, word)
	if err != nil {
		return err
	}

	s.Steps++
	nextPC := s.PC + 4

	switch in.Op {
	case Lui:
		s.StoreConcrete(in.RD, bitvector.FromUint64(uint64(in.Imm)))

	case Addi:
		if err := execUnaryImm(s, f, in, bitvector.Add); err != nil {
			return err
		}

	case Add:
		if err := execBinaryReg(s, f, in, bitvector.Add); err != nil {
			return err
		}
	case Sub:
		if err := execBinaryReg(s, f, in, bitvector.Sub); err != nil {
			return err
		}
	case Mul:
		if err := execBinaryReg(s, f, in, bitvector.Mul); err != nil {
			return err
		}
	case Sltu:
		if err := execBinaryReg(s, f, in, bitvector.Sltu); err != nil {
			return err
		}
	case Divu:
		if err := execDivRem(s, f, in, bitvector.Divu); err != nil {
			return err
		}
	case Remu:
		if err := execDivRem(s, f, in, bitvector.Remu); err != nil {
			return err
		}

	case Ld:
		if err := execLoad(s, in); err != nil {
			return err
		}
	case Sd:
		if err := execStore(s, in); err != nil {
			return err
		}

	case Beq:
		if s.IsRegSymbolic(in.RS1) || s.IsRegSymbolic(in.RS2) {
			// Branching on a symbolic condition is the driver's job (spec
			// §4.G): Step only executes concrete control flow. Callers
			// that reach a symbolic Beq must fork via the symbolic driver
			// before calling Step again.
			return &symbolicBranchError{pc: s.PC}
		}
		if s.Reg[in.RS1].Equals(s.Reg[in.RS2]) == bitvector.One {
			nextPC = uint64(int64(s.PC) + in.Imm)
		}

	case Jal:
		s.StoreConcrete(in.RD, bitvector.FromUint64(nextPC))
		nextPC = uint64(int64(s.PC) + in.Imm)

	case Jalr:
		if s.IsRegSymbolic(in.RS1) {
			return &GuestTrap{Kind: TrapSymbolicAddress, PC: s.PC}
		}
		target := uint64(int64(s.Reg[in.RS1].Uint64()) + in.Imm)
		s.StoreConcrete(in.RD, bitvector.FromUint64(nextPC))
		nextPC = target

	case Ecall:
		if err := execEcall(s, io); err != nil {
			return err
		}

	default:
		return &DecodeError{PC: s.PC, Word: word}
	}

	s.PC = nextPC
	return nil
}

// symbolicBranchError signals that Step was asked to execute a branch
// whose condition is symbolic; only the symbolic driver resolves it.
type symbolicBranchError struct{ pc uint64 }

func (e *symbolicBranchError) Error() string {
	return "riscu: symbolic branch condition must be resolved by the driver"
}

// IsSymbolicBranch reports whether err signals a symbolic branch condition.
func IsSymbolicBranch(err error) bool {
	_, ok := err.(*symbolicBranchError)
	return ok
}

func execUnaryImm(s *State, f *formula.Formula, in *Instruction, op bitvector.Operator) error {
	imm := bitvector.FromUint64(uint64(in.Imm))
	if s.IsRegSymbolic(in.RS1) {
		lhs := s.RegSymbol(in.RS1)
		rhs := f.AddConstant(imm)
		s.StoreSymbolic(in.RD, f.AddBinary(op, lhs, rhs))
		return nil
	}
	v, _ := bitvector.ApplyBinary(op, s.Reg[in.RS1], imm)
	s.StoreConcrete(in.RD, v)
	return nil
}

func execBinaryReg(s *State, f *formula.Formula, in *Instruction, op bitvector.Operator) error {
	if s.IsRegSymbolic(in.RS1) || s.IsRegSymbolic(in.RS2) {
		lhs := regSymbol(s, f, in.RS1)
		rhs := regSymbol(s, f, in.RS2)
		s.StoreSymbolic(in.RD, f.AddBinary(op, lhs, rhs))
		return nil
	}
	v, _ := bitvector.ApplyBinary(op, s.Reg[in.RS1], s.Reg[in.RS2])
	s.StoreConcrete(in.RD, v)
	return nil
}

func execDivRem(s *State, f *formula.Formula, in *Instruction, op bitvector.Operator) error {
	if s.IsRegSymbolic(in.RS1) || s.IsRegSymbolic(in.RS2) {
		lhs := regSymbol(s, f, in.RS1)
		rhs := regSymbol(s, f, in.RS2)
		s.StoreSymbolic(in.RD, f.AddBinary(op, lhs, rhs))
		return nil
	}
	v, divByZero := bitvector.ApplyBinary(op, s.Reg[in.RS1], s.Reg[in.RS2])
	if divByZero {
		return &GuestTrap{Kind: TrapDivisionByZero, PC: s.PC}
	}
	s.StoreConcrete(in.RD, v)
	return nil
}

// regSymbol returns r's SymbolId, interning a fresh Constant node if r is
// currently concrete — every symbolic binary operator needs both operands
// expressed as formula nodes.
func regSymbol(s *State, f *formula.Formula, r uint64) formula.SymbolId {
	if s.IsRegSymbolic(r) {
		return s.RegSymbol(r)
	}
	return f.AddConstant(s.Reg[r])
}

func execLoad(s *State, in *Instruction) error {
	if s.IsRegSymbolic(in.RS1) {
		return &GuestTrap{Kind: TrapSymbolicAddress, PC: s.PC}
	}
	addr := uint64(int64(s.Reg[in.RS1].Uint64()) + in.Imm)
	if err := checkAlignedBounds(s, addr); err != nil {
		return err
	}
	if s.IsMemSymbolic(addr) {
		s.StoreSymbolic(in.RD, s.MemSymbol(addr))
		return nil
	}
	s.StoreConcrete(in.RD, s.LoadMemConcrete(addr))
	return nil
}

func execStore(s *State, in *Instruction) error {
	if s.IsRegSymbolic(in.RS1) {
		return &GuestTrap{Kind: TrapSymbolicAddress, PC: s.PC}
	}
	addr := uint64(int64(s.Reg[in.RS1].Uint64()) + in.Imm)
	if err := checkAlignedBounds(s, addr); err != nil {
		return err
	}
	if s.IsRegSymbolic(in.RS2) {
		s.StoreMemSymbolic(addr, s.RegSymbol(in.RS2))
		return nil
	}
	s.StoreMemConcrete(addr, s.Reg[in.RS2])
	return nil
}

// checkAlignedBounds enforces RISC-U's only memory access granularity:
// 8-byte-aligned doublewords, since ld/sd are the only memory instructions
// in the set.
func checkAlignedBounds(s *State, addr uint64) error {
	if addr%8 != 0 {
		return &GuestTrap{Kind: TrapMisalignedAccess, PC: s.PC}
	}
	if addr+8 > uint64(len(s.Mem)) {
		return &GuestTrap{Kind: TrapOutOfBounds, PC: s.PC}
	}
	return nil
}

func execEcall(s *State, io GuestIO) error {
	switch s.Reg[a7].Uint64() {
	case sysExit:
		return &ExitError{Status: int64(s.Reg[a0].Uint64())}

	case sysRead:
		if io == nil {
			return &GuestTrap{Kind: TrapReachedUnreachable, PC: s.PC}
		}
		fd := int(s.Reg[a0].Uint64())
		buf := s.Reg[a1].Uint64()
		n := int(s.Reg[a2].Uint64())
		if err := checkAlignedBounds(s, buf); n > 0 && err != nil {
			return err
		}
		if n < 0 || buf > uint64(len(s.Mem)) || uint64(n) > uint64(len(s.Mem))-buf {
			return &GuestTrap{Kind: TrapOutOfBounds, PC: s.PC}
		}
		tmp := make([]byte, n)
		read, rerr := io.Read(fd, tmp)
		if rerr != nil {
			read = 0
		}
		for i := 0; i < read; i++ {
			s.Mem[buf+uint64(i)] = tmp[i]
		}
		s.StoreConcrete(a0, bitvector.FromUint64(uint64(read)))
		return nil

	case sysWrite:
		if io == nil {
			return &GuestTrap{Kind: TrapReachedUnreachable, PC: s.PC}
		}
		fd := int(s.Reg[a0].Uint64())
		buf := s.Reg[a1].Uint64()
		n := int(s.Reg[a2].Uint64())
		if n < 0 || buf > uint64(len(s.Mem)) || uint64(n) > uint64(len(s.Mem))-buf {
			return &GuestTrap{Kind: TrapOutOfBounds, PC: s.PC}
		}
		written, werr := io.Write(fd, s.Mem[buf:buf+uint64(n)])
		if werr != nil {
			written = 0
		}
		s.StoreConcrete(a0, bitvector.FromUint64(uint64(written)))
		return nil

	case sysBrk:
		// monster's guests never grow the heap past the configured memory
		// size; brk is a no-op that just echoes the requested break back,
		// matching selfie's bump allocator contract.
		return nil

	default:
		return &GuestTrap{Kind: TrapReachedUnreachable, PC: s.PC}
	}
}
