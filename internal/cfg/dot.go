package cfg

import (
	"fmt"
	"io"
	"sort"
)

// WriteDOT renders g as Graphviz DOT, using plain fmt.Fprintf-based digraph
// emission rather than a dedicated graph-rendering library. When
// withDistances is true, each node label is annotated with its precomputed
// distance to the nearest exit.
func (g *Graph) WriteDOT(w io.Writer, withDistances bool) error {
	var distances map[uint64]int
	if withDistances {
		distances = g.Distances()
	}

	addrs := make([]uint64, 0, len(g.Instrs))
	for addr := range g.Instrs {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	if _, err := fmt.Fprintln(w, "digraph cfg {"); err != nil {
		return err
	}
	for _, addr := range addrs {
		in := g.Instrs[addr]
		label := fmt.Sprintf("%#x: %s", addr, in.Op)
		if withDistances {
			if d, ok := distances[addr]; ok {
				label = fmt.Sprintf("%s (d=%d)", label, d)
			} else {
				label = fmt.Sprintf("%s (d=inf)", label)
			}
		}
		if _, err := fmt.Fprintf(w, "  %q [label=%q];\n", nodeID(addr), label); err != nil {
			return err
		}
	}
	for _, addr := range addrs {
		for _, succ := range g.Succ[addr] {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", nodeID(addr), nodeID(succ)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeID(addr uint64) string {
	return fmt.Sprintf("0x%x", addr)
}
