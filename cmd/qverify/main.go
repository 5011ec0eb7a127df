// qverify checks circuit files against each other from the command line:
// equivalence up to terminal measurements, exact structural equality, worst
// phased deviation, and diagram matching.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/compare"
	"github.com/zaqqwerty/Cirq/diagram"
	"github.com/zaqqwerty/Cirq/measure"
	"github.com/zaqqwerty/Cirq/prof"
	"github.com/zaqqwerty/Cirq/verr"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	root := &cobra.Command{
		Use:           "qverify",
		Short:         "verification oracle for circuit semantics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		equivalenceCmd(log),
		sameCmd(log),
		deviationCmd(log),
		diagramCmd(log),
	)

	if err := root.Execute(); err != nil {
		switch err.(type) {
		case *verr.ComparisonError:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		default:
			log.Errorw("command failed", "error", err)
			os.Exit(1)
		}
	}
	measure.Global.Dump()
}

func equivalenceCmd(log *zap.SugaredLogger) *cobra.Command {
	var atol float64
	cmd := &cobra.Command{
		Use:   "equivalence <actual.json> <reference.json>",
		Short: "check equivalence up to terminal measurements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, reference, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			defer prof.Track(log, time.Now(), "equivalence")
			var cmpErr error
			measure.Section("equivalence", func() {
				cmpErr = compare.AssertEquivalent(actual, reference, atol)
			})
			if cmpErr != nil {
				return cmpErr
			}
			log.Infow("circuits are equivalent", "atol", atol)
			return nil
		},
	}
	cmd.Flags().Float64Var(&atol, "atol", 0, "absolute tolerance per matrix entry")
	cmd.MarkFlagRequired("atol")
	return cmd
}

func sameCmd(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "same <actual.json> <desired.json>",
		Short: "check exact moment-by-moment structural equality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, desired, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := compare.AssertSameCircuits(actual, desired); err != nil {
				return err
			}
			log.Infow("circuits are structurally identical")
			return nil
		},
	}
}

func deviationCmd(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "deviation <actual.json> <reference.json>",
		Short: "print the worst per-block phased deviation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, reference, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}
			var dev float64
			elapsed, err := prof.Timed(func() error {
				var err error
				dev, err = compare.MaxDeviation(actual, reference)
				return err
			})
			if err != nil {
				return err
			}
			log.Infow("stage finished", "stage", "deviation", "elapsed", elapsed)
			fmt.Fprintf(os.Stdout, "%g\n", dev)
			return nil
		},
	}
}

func diagramCmd(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "diagram <circuit.json> [desired.txt]",
		Short: "render a circuit's diagram, or check it against a desired one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := circuit.LoadJSONCircuit(args[0])
			if err != nil {
				return err
			}
			rendered := circuit.Render(c)
			if len(args) == 1 {
				fmt.Fprint(os.Stdout, rendered)
				return nil
			}
			desired, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			if err := diagram.AssertDiagramsEqual(rendered, string(desired)); err != nil {
				return err
			}
			log.Infow("diagram matches", "circuit", args[0])
			return nil
		},
	}
}

func loadPair(pathA, pathB string) (*circuit.Circuit, *circuit.Circuit, error) {
	a, err := circuit.LoadJSONCircuit(pathA)
	if err != nil {
		return nil, nil, err
	}
	b, err := circuit.LoadJSONCircuit(pathB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
