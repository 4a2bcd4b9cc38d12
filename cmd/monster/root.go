package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const rootLongDescription = `Monster finds bugs in RISC-U binaries (a fixed RISC-V
subset) through symbolic execution and rarity-guided concrete fuzzing.`

// newRootCmd builds the disassemble|cfg|execute|rarity subcommand tree,
// wiring one shared *logrus.Logger whose level the persistent --verbose
// flag controls.
func newRootCmd() *cobra.Command {
	log := logrus.New()
	var verbose string

	root := &cobra.Command{
		Use:          "monster",
		Short:        "Find bugs in RISC-U binaries",
		Long:         rootLongDescription,
		Version:      "0.1.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(verbose)
			if err != nil {
				return errors.Wrap(err, "monster")
			}
			log.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&verbose, "verbose", "v", string(levelInfo),
		"configure logging level to use ("+joinStrings(logLevelVariants())+")")

	root.AddCommand(newDisassembleCmd(log))
	root.AddCommand(newCFGCmd(log))
	root.AddCommand(newExecuteCmd(log))
	root.AddCommand(newRarityCmd(log))

	return root
}
