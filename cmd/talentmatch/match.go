package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/talentmatch/internal/config"
	"github.com/okian/talentmatch/internal/domain/baseline"
	"github.com/okian/talentmatch/internal/engine"
	"github.com/okian/talentmatch/pkg/logger"
)

var (
	matchBenchmarks []string
	matchRows       bool
	matchPolicy     string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run one scoring invocation and print the result as JSON",
	Long: `Score the configured employee directory against the given benchmark
employees and print the ranked result to stdout.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringSliceVarP(&matchBenchmarks, "benchmark", "b", nil, "Benchmark employee id (repeatable, max 3)")
	matchCmd.Flags().BoolVar(&matchRows, "rows", false, "Include per-attribute match rows in the output")
	matchCmd.Flags().StringVar(&matchPolicy, "policy", "", "Categorical baseline policy: lexicographic, mode, or first")
	_ = matchCmd.MarkFlagRequired("benchmark")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := cmd.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if matchPolicy != "" {
		cfg.BaselinePolicy = matchPolicy
	}

	store, cleanup, err := buildDirectory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("building directory: %w", err)
	}
	defer cleanup()

	snap, err := store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("loading directory snapshot: %w", err)
	}

	eng := engine.New(
		engine.WithWorkerCount(cfg.WorkerCount),
		engine.WithBaselinePolicy(baseline.ParsePolicy(cfg.BaselinePolicy)),
	)
	result, err := eng.Evaluate(ctx, snap, matchBenchmarks)
	if err != nil {
		return err
	}

	if !matchRows {
		result.Rows = nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
