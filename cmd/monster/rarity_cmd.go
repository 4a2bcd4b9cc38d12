package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saraseidl/monster/internal/rarity"
	"github.com/saraseidl/monster/internal/riscu"
)

func newRarityCmd(log *logrus.Logger) *cobra.Command {
	var meanName string
	cfg := rarity.Config{}

	c := &cobra.Command{
		Use:   "rarity FILE",
		Short: "Run rarity-guided concrete fuzzing against a RISC-U ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mean, err := rarity.ParseMean(meanName)
			if err != nil {
				return errors.Wrap(err, "monster: rarity")
			}
			cfg.Mean = mean

			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "monster: rarity")
			}

			path := args[0]

			// Load once up front so a bad path fails fast instead of
			// inside the driver's first fill(); EntryFactory itself has
			// no error return, since every population member starts from
			// the same already-validated ELF.
			if _, err := riscu.Load(path, cfg.MemorySizeMiB<<20); err != nil {
				return errors.Wrap(err, "monster: rarity")
			}
			entry := func() *riscu.State {
				state, err := riscu.Load(path, cfg.MemorySizeMiB<<20)
				if err != nil {
					log.WithField("component", "rarity").Fatalf("reload %s: %v", path, err)
				}
				return state
			}

			drv := rarity.NewDriver(cfg, entry)
			findings, err := drv.Run(context.Background())
			if err != nil {
				return errors.Wrap(err, "monster: rarity")
			}
			for _, finding := range findings {
				fmt.Println(finding.String())
			}
			log.WithField("component", "rarity").Infof(
				"%d findings, %d distinct fingerprints observed", len(findings), len(drv.Counts()))
			return nil
		},
	}

	c.Flags().Uint64VarP(&cfg.MemorySizeMiB, "memory", "m", rarity.Defaults.MemorySizeMiB,
		"Amount of memory to be used per execution context in megabytes [1-1024]")
	c.Flags().IntVar(&cfg.StepSize, "step-size", rarity.Defaults.StepSize,
		"Number of instructions to execute for each state before scoring")
	c.Flags().IntVar(&cfg.AmountOfStates, "states", rarity.Defaults.AmountOfStates,
		"Population size to be used for rarity simulation")
	c.Flags().IntVarP(&cfg.Selection, "selection", "s", rarity.Defaults.Selection,
		"Number of states to be selected after every round of rarity simulation")
	c.Flags().IntVarP(&cfg.Iterations, "iterations", "i", rarity.Defaults.Iterations,
		"Number of iterations (rounds) to be used for rarity simulation")
	c.Flags().Float64Var(&cfg.CopyInitRatio, "copy-init-ratio", rarity.Defaults.CopyInitRatio,
		"Ratio deciding how many of the missing states should be copies of the selected ones [0,1]")
	c.Flags().StringVar(&meanName, "mean", string(rarity.Defaults.Mean),
		"Mean function to be used to compute score of a state ("+joinStrings(rarity.Means())+")")
	c.Flags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for the population's concrete input PRNGs")
	return c
}
