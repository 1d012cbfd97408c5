package directory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okian/talentmatch/internal/domain/model"
)

// employeeQuery is the single wide read the engine scores from. The two
// combined pillars arrive as 2-way averages of their sub-pillars, computed
// here so the catalog sees one value per pillar.
const employeeQuery = `
SELECT employee_id, fullname, directorate, role, grade,
       education, major, area, years_of_service,
       iq, gtq, tiki, pauli, cfit,
       papi_g, papi_a, papi_t, papi_z, papi_k,
       mbti, disc,
       strength_1, strength_2, strength_3, strength_4, strength_5,
       sea,
       (customer_orientation + service_excellence) / 2.0 AS customer_focus,
       integrity, drive_result,
       (analytical_thinking + conceptual_thinking) / 2.0 AS problem_solving,
       collaboration, developing_others, adaptability
FROM employees
ORDER BY employee_id`

const versionQuery = `
SELECT count(*), coalesce(max(updated_at)::text, '') FROM employees`

// PostgresStore reads the employee population from Postgres. Each Snapshot
// call materializes a fresh immutable view; the version is derived from the
// table's row count and last update time.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Snapshot reads the full population.
func (s *PostgresStore) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	var count int
	var lastUpdate string
	if err := s.pool.QueryRow(ctx, versionQuery).Scan(&count, &lastUpdate); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	rows, err := s.pool.Query(ctx, employeeQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0, count)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(
			&e.EmployeeID, &e.FullName, &e.Directorate, &e.Role, &e.Grade,
			&e.Education, &e.Major, &e.Area, &e.YearsOfService,
			&e.IQ, &e.GTQ, &e.TIKI, &e.Pauli, &e.CFIT,
			&e.PapiG, &e.PapiA, &e.PapiT, &e.PapiZ, &e.PapiK,
			&e.MBTI, &e.DISC,
			&e.Strengths[0], &e.Strengths[1], &e.Strengths[2], &e.Strengths[3], &e.Strengths[4],
			&e.SEA, &e.CustomerFocus, &e.Integrity, &e.DriveResult,
			&e.ProblemSolving, &e.Collaboration, &e.DevelopingOthers, &e.Adaptability,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		normalize(&e)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if len(employees) == 0 {
		return nil, ErrEmptyDirectory
	}

	version := fmt.Sprintf("pg-%d-%s", count, lastUpdate)
	return model.NewSnapshot(version, employees), nil
}

// Count returns the current number of employees, 0 on query failure.
func (s *PostgresStore) Count(ctx context.Context) int {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM employees`).Scan(&count); err != nil {
		return 0
	}
	return count
}
