package main

import (
	"github.com/spf13/cobra"
	"streaming-service.backend/internal/usecases"
)

var generateFull bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dataset in memory and print its summary",
	Long: `Dry run: builds users, payment methods, movies, devices and viewing history
from the catalog without touching the database. Prints entity counts as JSON,
or the whole dataset with --full.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&generateFull, "full", false, "Print every generated record instead of counts")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	uc := usecases.NewSeedUsecase(nil, usecases.SeedRepositories{}, nil, cfg.Seed)

	ds, err := uc.Generate(cmd.Context(), seedInput(false))
	if err != nil {
		return err
	}
	if generateFull {
		return writeJSON(cmd.OutOrStdout(), ds)
	}
	return writeJSON(cmd.OutOrStdout(), ds.Summary())
}
