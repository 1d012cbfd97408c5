// Package engine orchestrates one scoring invocation: validate the
// benchmark set, build the baseline, score the population in parallel,
// aggregate and rank. The engine holds no state across invocations; it is a
// pure transformation over an immutable snapshot.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/talentmatch/internal/domain/aggregate"
	"github.com/okian/talentmatch/internal/domain/baseline"
	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/domain/rank"
	"github.com/okian/talentmatch/pkg/logger"
	"github.com/okian/talentmatch/pkg/metrics"
)

// MaxBenchmarkSize caps the benchmark set, matching the picker in the
// upstream vacancy flow.
const MaxBenchmarkSize = 3

// Engine runs scoring invocations.
type Engine struct {
	builder *baseline.Builder
	workers int
	logger  logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWorkerCount bounds the per-employee scoring parallelism.
func WithWorkerCount(count int) Option {
	return func(e *Engine) {
		if count > 0 {
			e.workers = count
		}
	}
}

// WithBaselinePolicy sets the categorical baseline selection policy.
func WithBaselinePolicy(p baseline.Policy) Option {
	return func(e *Engine) {
		e.builder = baseline.New(baseline.WithPolicy(p))
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New constructs an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		builder: baseline.New(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Get().Named("engine")
	}
	return e
}

// Evaluate scores every employee in the snapshot against the baseline
// derived from benchmarkIDs and returns the ranked result. The snapshot is
// read-only; concurrent invocations share no mutable state.
func (e *Engine) Evaluate(ctx context.Context, snap *model.Snapshot, benchmarkIDs []string) (*model.MatchResult, error) {
	start := time.Now()

	benchmarks, benchSet, err := e.resolveBenchmarks(snap, benchmarkIDs)
	if err != nil {
		metrics.RecordInvalidBenchmark()
		return nil, err
	}

	baselineStart := time.Now()
	vec := e.builder.Build(benchmarks)
	metrics.RecordBaselineDuration(float64(time.Since(baselineStart).Milliseconds()))

	// Per-employee scoring is embarrassingly parallel once the baseline is
	// fixed; output order comes from the final sort, not execution order.
	candidates := make([]aggregate.Candidate, snap.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range snap.Employees {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("scoring cancelled: %w", err)
			}
			emp := snap.Employees[i]
			candidates[i] = aggregate.Evaluate(emp, vec, benchSet[emp.EmployeeID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Cancelled invocations discard partial results; there is nothing
		// to clean up.
		return nil, err
	}

	rank.Order(candidates)
	result := &model.MatchResult{
		SnapshotVersion: snap.Version,
		BenchmarkIDs:    benchmarkIDs,
		Rows:            rank.Rows(candidates),
		Summaries:       rank.Summaries(candidates),
	}

	metrics.RecordMatchComputed()
	metrics.RecordMatchDuration(float64(time.Since(start).Milliseconds()))
	e.logger.Info(ctx, "match evaluated",
		logger.Int("population", snap.Len()),
		logger.Int("benchmarks", len(benchmarks)),
		logger.Int("rows", len(result.Rows)),
	)
	return result, nil
}

// resolveBenchmarks validates the benchmark id set and resolves it against
// the snapshot. All failures surface as ErrInvalidBenchmark before any
// scoring begins; no partial results are produced.
func (e *Engine) resolveBenchmarks(snap *model.Snapshot, ids []string) ([]model.Employee, map[string]bool, error) {
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("%w: benchmark set is empty", ErrInvalidBenchmark)
	}
	if len(ids) > MaxBenchmarkSize {
		return nil, nil, fmt.Errorf("%w: benchmark set has %d members, maximum is %d", ErrInvalidBenchmark, len(ids), MaxBenchmarkSize)
	}

	seen := make(map[string]bool, len(ids))
	benchmarks := make([]model.Employee, 0, len(ids))
	var unknown []string
	for _, id := range ids {
		if seen[id] {
			return nil, nil, fmt.Errorf("%w: duplicate benchmark id %q", ErrInvalidBenchmark, id)
		}
		seen[id] = true
		emp, ok := snap.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		benchmarks = append(benchmarks, emp)
	}
	if len(unknown) > 0 {
		return nil, nil, fmt.Errorf("%w: unknown employee ids %s", ErrInvalidBenchmark, strings.Join(unknown, ", "))
	}
	return benchmarks, seen, nil
}
