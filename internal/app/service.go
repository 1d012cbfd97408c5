// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/talentmatch/internal/adapters/audit"
	"github.com/okian/talentmatch/internal/adapters/directory"
	"github.com/okian/talentmatch/internal/domain/baseline"
	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/domain/resultcache"
	"github.com/okian/talentmatch/internal/engine"
	"github.com/okian/talentmatch/pkg/logger"
	"github.com/okian/talentmatch/pkg/metrics"
)

// MatchRequest carries one scoring invocation plus the optional vacancy
// context it was issued for.
type MatchRequest struct {
	BenchmarkIDs []string
	RoleName     string
	JobLevel     string
	RolePurpose  string
}

// MatchOutcome is the result of a scoring invocation. VacancyID is the nil
// UUID when the request carried no vacancy context or auditing is disabled.
type MatchOutcome struct {
	VacancyID uuid.UUID
	Result    *model.MatchResult
	CacheHit  bool
}

// Service wires the directory, engine, result cache and audit sink behind
// the API.
type Service struct {
	mu sync.RWMutex

	// Core components
	directory directory.Store
	sink      audit.Sink
	engine    *engine.Engine
	cache     resultcache.Cache

	// Configuration
	workerCount    int
	baselinePolicy baseline.Policy
	cacheSize      int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDirectory sets the employee directory backing the service.
func WithDirectory(store directory.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.directory = store
		}
	}
}

// WithAuditSink sets the vacancy audit sink. A nil sink disables auditing.
func WithAuditSink(sink audit.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithWorkerCount sets the scoring parallelism.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithBaselinePolicy sets the categorical baseline selection policy.
func WithBaselinePolicy(policy string) Option {
	return func(s *Service) {
		s.baselinePolicy = baseline.ParsePolicy(policy)
	}
}

// WithResultCacheSize bounds the match result cache.
func WithResultCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:    runtime.NumCPU(),
		baselinePolicy: baseline.PolicyLexicographic,
		cacheSize:      128,
		logger:         nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.directory == nil {
		return fmt.Errorf("%w: no directory configured", ErrNotReady)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting talent match service...")

	s.engine = engine.New(
		engine.WithWorkerCount(s.workerCount),
		engine.WithBaselinePolicy(s.baselinePolicy),
		engine.WithLogger(s.logger.Named("engine")),
	)
	s.cache = resultcache.New(
		resultcache.WithMaxSize(s.cacheSize),
	)

	population := s.directory.Count(ctx)
	metrics.UpdateDirectorySize(population)
	metrics.UpdateWorkerCount(s.workerCount)

	s.started = true
	s.logger.Info(ctx, "talent match service started",
		logger.Int("population", population),
		logger.Int("workers", s.workerCount),
		logger.String("baselinePolicy", string(s.baselinePolicy)),
		logger.Int("cacheSize", s.cacheSize),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "talent match service stopped")
}

// Match runs one scoring invocation. Results are cached per snapshot
// version and benchmark set; audit failures never fail the match.
func (s *Service) Match(ctx context.Context, req MatchRequest) (*MatchOutcome, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotReady
	}

	snap, err := s.directory.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading directory snapshot: %w", err)
	}

	outcome := &MatchOutcome{}
	key := resultcache.Key(snap.Version, req.BenchmarkIDs)
	if cached, ok := s.cache.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		outcome.Result = cached
		outcome.CacheHit = true
	} else {
		metrics.RecordCacheMiss()
		result, err := s.engine.Evaluate(ctx, snap, req.BenchmarkIDs)
		if err != nil {
			return nil, err
		}
		s.cache.Put(ctx, key, result)
		metrics.UpdateCacheSize(s.cache.Size())
		outcome.Result = result
	}

	if s.sink != nil && req.RoleName != "" {
		outcome.VacancyID = s.recordVacancy(ctx, req, outcome.Result)
	}

	return outcome, nil
}

// recordVacancy writes the vacancy and its ranking to the audit sink.
// Failures are logged and counted but never propagate; the match result is
// already complete.
func (s *Service) recordVacancy(ctx context.Context, req MatchRequest, result *model.MatchResult) uuid.UUID {
	vacancyID, err := s.sink.RecordVacancy(ctx, audit.Vacancy{
		RoleName:     req.RoleName,
		JobLevel:     req.JobLevel,
		RolePurpose:  req.RolePurpose,
		BenchmarkIDs: req.BenchmarkIDs,
	})
	if err != nil {
		metrics.RecordAuditError()
		s.logger.Warn(ctx, "vacancy audit failed",
			logger.String("roleName", req.RoleName),
			logger.Error(err),
		)
		return uuid.Nil
	}

	if err := s.sink.RecordRanking(ctx, vacancyID, result.Summaries); err != nil {
		metrics.RecordAuditError()
		s.logger.Warn(ctx, "ranking audit failed",
			logger.String("vacancyID", vacancyID.String()),
			logger.Error(err),
		)
		return vacancyID
	}

	metrics.RecordVacancyRecorded()
	return vacancyID
}

// Employees returns the current directory snapshot.
func (s *Service) Employees(ctx context.Context) (*model.Snapshot, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotReady
	}
	return s.directory.Snapshot(ctx)
}

// Count returns the directory population size.
func (s *Service) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return 0
	}
	return s.directory.Count(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"workerCount":    s.workerCount,
		"baselinePolicy": string(s.baselinePolicy),
		"cacheSize":      s.cacheSize,
	}

	if s.started {
		population := s.directory.Count(ctx)
		cached := s.cache.Size()

		stats["population"] = population
		stats["cachedResults"] = cached

		// Update metrics
		metrics.UpdateDirectorySize(population)
		metrics.UpdateCacheSize(cached)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}
