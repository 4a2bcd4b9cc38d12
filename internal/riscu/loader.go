package riscu

import (
	"debug/elf"
	"fmt"

	"github.com/saraseidl/monster/internal/bitvector"
)

// Load reads the RISC-V ELF binary at path into a freshly allocated State
// of memLimit bytes, copying each allocatable section to its virtual
// address and returning the state positioned at the entry point.
func Load(path string, memLimit uint64) (*State, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("riscu: open %s: %w", path, err)
	}
	defer f.Close()

	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("riscu: %s is not a RISC-V ELF binary (machine=%s)", path, f.Machine)
	}
	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("riscu: %s is not a 64-bit ELF binary", path)
	}

	s := NewState(0, f.Entry, memLimit)
	s.StoreConcrete(SP, bitvector.FromUint64(memLimit-8))

	for _, sec := range f.Sections {
		if sec.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		if sec.Addr+sec.Size > memLimit {
			return nil, fmt.Errorf("riscu: section %s (addr=%#x size=%d) exceeds configured memory size %d",
				sec.Name, sec.Addr, sec.Size, memLimit)
		}
		if sec.Type == elf.SHT_NOBITS {
			continue // .bss: already zeroed by make([]byte, memLimit)
		}
		if _, err := sec.ReadAt(s.Mem[sec.Addr:sec.Addr+sec.Size], 0); err != nil {
			return nil, fmt.Errorf("riscu: load section %s (addr=%#x): %w", sec.Name, sec.Addr, err)
		}
	}

	return s, nil
}
