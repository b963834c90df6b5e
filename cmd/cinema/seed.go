package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedTruncate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a dataset and load it into the database",
	Long: `Generates a dataset and inserts it in one transaction, translating the
provisional movie and device ids to the ones the database assigned.
The run is recorded in seed_runs whether it succeeds or not.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var truncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Empty the seeded tables and restart their ids",
	Args:  cobra.NoArgs,
	RunE:  runTruncate,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(truncateCmd)
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "Truncate the seeded tables before loading")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	run, err := a.seed.Run(ctx, seedInput(seedTruncate))
	if run != nil {
		if werr := writeJSON(cmd.OutOrStdout(), run); werr != nil {
			return werr
		}
	}
	return err
}

func runTruncate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.seed.Truncate(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Seeded tables truncated")
	return nil
}
