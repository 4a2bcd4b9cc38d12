package main

import (
	"fmt"
	"sort"

	"github.com/saraseidl/monster/internal/riscu"
)

// sortedAddrs returns instrs' keys in ascending order, the shape both
// `disassemble` and `cfg` want their output in.
func sortedAddrs(instrs map[uint64]*riscu.Instruction) []uint64 {
	addrs := make([]uint64, 0, len(instrs))
	for addr := range instrs {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// validateMemoryMiB enforces the guest memory size range at the CLI
// boundary before any driver is constructed.
func validateMemoryMiB(v uint64) error {
	if v < 1 || v > 1024 {
		return fmt.Errorf("memory size must be in range 1-1024, got %d", v)
	}
	return nil
}
