package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saraseidl/monster/internal/cfg"
	"github.com/saraseidl/monster/internal/exploration"
	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/riscu"
	"github.com/saraseidl/monster/internal/smt"
	"github.com/saraseidl/monster/internal/solver"
	"github.com/saraseidl/monster/internal/symbolic"
)

func newExecuteCmd(log *logrus.Logger) *cobra.Command {
	var solverName string
	var strategyName string
	var maxDepth int
	var memoryMiB uint64
	var seed uint64

	c := &cobra.Command{
		Use:   "execute FILE",
		Short: "Symbolically execute a RISC-U ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMemoryMiB(memoryMiB); err != nil {
				return errors.Wrap(err, "monster: execute")
			}
			if maxDepth <= 0 {
				return errors.Wrap(fmt.Errorf("execution depth must be positive, got %d", maxDepth), "monster: execute")
			}
			solverType, err := solver.ParseType(solverName)
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}
			strategyType, err := exploration.ParseType(strategyName)
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}

			entry, err := riscu.Load(args[0], memoryMiB<<20)
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}

			strategy, err := buildStrategy(strategyType, entry, seed)
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}

			backend, err := buildSolver(solverType)
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}

			f := formula.New()
			drv := symbolic.NewDriver(entry, f, symbolic.Config{
				MaxExecutionDepth: maxDepth,
				Strategy:          strategy,
				Solver:            backend,
				IO:                stdio{},
				Logger:            log,
			})

			findings, err := drv.Run()
			if err != nil {
				return errors.Wrap(err, "monster: execute")
			}
			for _, finding := range findings {
				fmt.Println(finding.String())
			}
			log.WithField("component", "execute").Infof("%d findings over %d formula nodes", len(findings), f.Len())
			return nil
		},
	}

	c.Flags().StringVarP(&solverName, "solver", "s", string(solver.Monster),
		"SMT solver ("+joinStrings(solver.Variants())+")")
	c.Flags().IntVarP(&maxDepth, "execution-depth", "d", symbolic.Defaults.MaxExecutionDepth,
		"Number of instructions, where the path execution will be aborted")
	c.Flags().Uint64VarP(&memoryMiB, "memory", "m", symbolic.Defaults.MemorySizeMiB,
		"Amount of memory to be used per execution context in megabytes [1-1024]")
	c.Flags().StringVar(&strategyName, "strategy", string(exploration.ShortestPathsType),
		"Path exploration strategy to use when exploring state search space ("+joinStrings(exploration.Variants())+")")
	c.Flags().Uint64Var(&seed, "seed", 0,
		"Seed for the coin-flip exploration strategy (ignored by shortest-paths)")
	return c
}

// buildStrategy constructs the chosen exploration.Strategy. ShortestPaths
// needs the program's control-flow distances to every exit, computed once
// up front from the entry state's decoded instruction stream.
func buildStrategy(t exploration.Type, entry *riscu.State, seed uint64) (exploration.Strategy, error) {
	switch t {
	case exploration.ShortestPathsType:
		instrs := riscu.Disassemble(entry.Mem, entry.PC)
		return exploration.NewShortestPaths(cfg.Build(instrs).Distances()), nil
	case exploration.CoinFlipType:
		return exploration.NewCoinFlip(seed), nil
	default:
		return nil, fmt.Errorf("unreachable: unvalidated strategy type %q", t)
	}
}

// buildSolver constructs the chosen solver.Solver backend. The external
// backend streams SMT-LIB to stdout and never reads a reply.
func buildSolver(t solver.Type) (solver.Solver, error) {
	switch t {
	case solver.Monster:
		return solver.NewMonsterSolver(), nil
	case solver.External:
		return smt.NewEmitter(os.Stdout)
	default:
		return nil, fmt.Errorf("unreachable: unvalidated solver type %q", t)
	}
}
