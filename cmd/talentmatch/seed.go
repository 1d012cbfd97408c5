package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/talentmatch/internal/seeddata"
)

var (
	seedSize int
	seedSeed int64
	seedOut  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic employee directory file",
	Long: `Generate a deterministic synthetic population and write it as the JSON
format accepted by the file directory source.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedSize, "size", 500, "Population size")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 42, "Random seed")
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", "employees.json", "Output file path")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	gen := seeddata.New(
		seeddata.WithSize(seedSize),
		seeddata.WithSeed(seedSeed),
	)
	employees := gen.Generate()

	f, err := os.Create(seedOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", seedOut, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(employees); err != nil {
		return fmt.Errorf("writing %s: %w", seedOut, err)
	}

	fmt.Printf("wrote %d employees to %s\n", len(employees), seedOut)
	return nil
}
