package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saraseidl/monster/internal/cfg"
	"github.com/saraseidl/monster/internal/riscu"
	"github.com/saraseidl/monster/internal/symbolic"
)

func newCFGCmd(log *logrus.Logger) *cobra.Command {
	var outputFile string
	var distances bool
	var memoryMiB uint64

	c := &cobra.Command{
		Use:   "cfg FILE",
		Short: "Generate control flow graph from RISC-U ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMemoryMiB(memoryMiB); err != nil {
				return errors.Wrap(err, "monster: cfg")
			}

			state, err := riscu.Load(args[0], memoryMiB<<20)
			if err != nil {
				return errors.Wrap(err, "monster: cfg")
			}

			instrs := riscu.Disassemble(state.Mem, state.PC)
			graph := cfg.Build(instrs)

			out, err := os.Create(outputFile)
			if err != nil {
				return errors.Wrap(err, "monster: cfg: open output file")
			}
			defer out.Close()

			if err := graph.WriteDOT(out, distances); err != nil {
				return errors.Wrap(err, "monster: cfg: write DOT")
			}
			log.WithField("component", "cfg").Infof("wrote %s (%d nodes)", outputFile, len(instrs))
			return nil
		},
	}
	c.Flags().StringVarP(&outputFile, "output-file", "o", "cfg.dot", "Output file to write to")
	c.Flags().BoolVarP(&distances, "distances", "d", false, "Compute also shortest path distances from exit")
	c.Flags().Uint64VarP(&memoryMiB, "memory", "m", symbolic.Defaults.MemorySizeMiB,
		"Amount of memory to be used per execution context in megabytes [1-1024]")
	return c
}
