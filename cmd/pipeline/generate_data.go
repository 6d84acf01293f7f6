package main

import (
	"fmt"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/mocksource"

	"github.com/spf13/cobra"
)

var (
	generateCount  int
	generateSeed   uint64
	generateOutput string
)

var generateDataCmd = &cobra.Command{
	Use:   "generate-data",
	Short: "Write a synthetic customers JSON file for the mock server",
	RunE:  runGenerateData,
}

func init() {
	generateDataCmd.Flags().IntVarP(&generateCount, "count", "n", 250, "Number of customers to generate")
	generateDataCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed (0 picks one)")
	generateDataCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path (defaults to MOCK_DATA_PATH)")
	rootCmd.AddCommand(generateDataCmd)
}

func runGenerateData(cmd *cobra.Command, _ []string) error {
	if generateCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", generateCount)
	}

	output := generateOutput
	if output == "" {
		output = config.Load().MockServer.DataPath
	}

	customers := mocksource.Generate(mocksource.GenerateOptions{
		Count: generateCount,
		Seed:  generateSeed,
	})
	if err := mocksource.WriteFile(output, customers); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d customers to %s\n", len(customers), output)
	return nil
}
