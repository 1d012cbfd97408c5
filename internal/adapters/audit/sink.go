// Package audit persists which benchmark set produced which ranking. The
// sink is a downstream consumer: failures here degrade to log lines and
// metrics, never to a failed match request.
package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/talentmatch/internal/domain/model"
)

// Vacancy describes the opening a match run was executed for.
type Vacancy struct {
	RoleName     string   `json:"role_name"`
	JobLevel     string   `json:"job_level"`
	RolePurpose  string   `json:"role_purpose"`
	BenchmarkIDs []string `json:"benchmark_ids"`
}

// Sink records vacancies and the rankings they produced.
type Sink interface {
	// RecordVacancy registers a vacancy and returns its id.
	RecordVacancy(ctx context.Context, v Vacancy) (uuid.UUID, error)

	// RecordRanking persists the ranked candidate list for a vacancy.
	RecordRanking(ctx context.Context, vacancyID uuid.UUID, summaries []model.Summary) error
}
