package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verticore/liftsim/qa/scenarios"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario <file>",
	Short: "Replay a scripted scenario and verify its expectations",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenarios.Load(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	stats, err := scenarios.Run(sc)
	if err != nil {
		return fmt.Errorf("run scenario: %w", err)
	}
	if err := scenarios.Verify(sc, stats); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d delivered, %.1f energy units, avg wait %.1f steps\n",
		sc.Name, stats.Delivered, stats.TotalEnergy, stats.AverageWaitSteps())
	return nil
}
