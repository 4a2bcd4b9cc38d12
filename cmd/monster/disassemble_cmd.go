package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saraseidl/monster/internal/riscu"
	"github.com/saraseidl/monster/internal/symbolic"
)

func newDisassembleCmd(log *logrus.Logger) *cobra.Command {
	var memoryMiB uint64

	c := &cobra.Command{
		Use:   "disassemble FILE",
		Short: "Disassemble a RISC-V ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMemoryMiB(memoryMiB); err != nil {
				return errors.Wrap(err, "monster: disassemble")
			}

			state, err := riscu.Load(args[0], memoryMiB<<20)
			if err != nil {
				return errors.Wrap(err, "monster: disassemble")
			}

			instrs := riscu.Disassemble(state.Mem, state.PC)
			for _, addr := range sortedAddrs(instrs) {
				fmt.Printf("%#08x: %s\n", addr, instrs[addr])
			}
			log.WithField("component", "disassemble").Infof("decoded %d instructions", len(instrs))
			return nil
		},
	}
	c.Flags().Uint64VarP(&memoryMiB, "memory", "m", symbolic.Defaults.MemorySizeMiB,
		"Amount of memory to be used per execution context in megabytes [1-1024]")
	return c
}
