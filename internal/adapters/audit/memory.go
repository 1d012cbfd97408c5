package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/talentmatch/internal/domain/model"
)

// MemorySink keeps the audit trail in memory. It backs tests and runs where
// no database is configured.
type MemorySink struct {
	mu        sync.RWMutex
	vacancies map[uuid.UUID]Vacancy
	rankings  map[uuid.UUID][]model.Summary
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		vacancies: make(map[uuid.UUID]Vacancy),
		rankings:  make(map[uuid.UUID][]model.Summary),
	}
}

// RecordVacancy registers a vacancy under a fresh id.
func (s *MemorySink) RecordVacancy(_ context.Context, v Vacancy) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.vacancies[id] = v
	return id, nil
}

// RecordRanking persists the ranked list for a vacancy.
func (s *MemorySink) RecordRanking(_ context.Context, vacancyID uuid.UUID, summaries []model.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vacancies[vacancyID]; !ok {
		return ErrUnknownVacancy
	}
	stored := make([]model.Summary, len(summaries))
	copy(stored, summaries)
	s.rankings[vacancyID] = stored
	return nil
}

// Vacancy returns a recorded vacancy.
func (s *MemorySink) Vacancy(id uuid.UUID) (Vacancy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vacancies[id]
	return v, ok
}

// Ranking returns the recorded ranking for a vacancy.
func (s *MemorySink) Ranking(id uuid.UUID) ([]model.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rankings[id]
	return r, ok
}
