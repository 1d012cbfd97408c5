package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okian/talentmatch/internal/domain/model"
)

// PostgresSink writes the audit trail to the job_vacancies and
// vacancy_audit tables.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresSink) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// RecordVacancy registers a vacancy and returns its id.
func (s *PostgresSink) RecordVacancy(ctx context.Context, v Vacancy) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO job_vacancies (role_name, job_level, role_purpose, benchmark_ids)
		 VALUES ($1, $2, $3, $4)
		 RETURNING vacancy_id`,
		v.RoleName, v.JobLevel, v.RolePurpose, v.BenchmarkIDs,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrRecordFailed, err)
	}
	return id, nil
}

// RecordRanking persists the ranked candidate list for a vacancy in one
// batch round trip.
func (s *PostgresSink) RecordRanking(ctx context.Context, vacancyID uuid.UUID, summaries []model.Summary) error {
	batch := &pgx.Batch{}
	for _, sum := range summaries {
		batch.Queue(
			`INSERT INTO vacancy_audit (vacancy_id, candidate_id, match_rate, is_benchmark, rank)
			 VALUES ($1, $2, $3, $4, $5)`,
			vacancyID, sum.EmployeeID, sum.FinalRate, sum.IsBenchmark, sum.Rank,
		)
	}
	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range summaries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("%w: %w", ErrRecordFailed, err)
		}
	}
	return nil
}
