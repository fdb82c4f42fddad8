// Analyze command performs a one-shot classification.
// Implements: prd002-state-classifier; prd004-phaselab-cli; prd006-analysis-journal.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/phaselab/pkg/analyzer"
)

var (
	analyzeSubstance   string
	analyzeTemperature float64
	analyzePressure    float64
	analyzeSave        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify the state of a substance",
	Long: `Analyze classifies the physical state of a substance at the given
temperature (°C) and pressure (atm).

Example:
  phaselab analyze --substance water --temperature 25
  phaselab analyze --substance nitrogen --temperature -200 --pressure 1.0
  phaselab analyze --substance water --temperature 105 --pressure 2.0 --save`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSubstance, "substance", "", "substance key (see \"phaselab list\")")
	analyzeCmd.Flags().Float64Var(&analyzeTemperature, "temperature", 0, "temperature in °C")
	analyzeCmd.Flags().Float64Var(&analyzePressure, "pressure", 1.0, "pressure in atm")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "append the result to the analysis journal")
	_ = analyzeCmd.MarkFlagRequired("substance")
	_ = analyzeCmd.MarkFlagRequired("temperature")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	result, err := analyzer.New(catalog).Analyze(analyzeTemperature, analyzePressure, analyzeSubstance)
	if err != nil {
		return err
	}

	var savedTo string
	if analyzeSave {
		journal, err := openJournal()
		if err != nil {
			return err
		}
		if _, err := journal.Append(result); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		savedTo = journal.Path()
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}

	printResult(cmd.OutOrStdout(), result)
	if savedTo != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Result saved to %s\n", savedTo)
	}
	return nil
}
