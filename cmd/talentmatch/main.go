// Package main provides the entry point for the Talent Match service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentmatch",
	Short: "Benchmark-based talent scoring service",
	Long: "Talent Match scores an employee directory against a baseline profile\n" +
		"derived from benchmark employees and returns a ranked result, either\n" +
		"over HTTP or as a one-shot CLI run.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
