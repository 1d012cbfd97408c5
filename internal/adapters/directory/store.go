// Package directory supplies the employee population the engine scores
// against. Implementations must hand out stable snapshots: the engine
// assumes values do not change within one invocation.
package directory

import (
	"context"
	"strings"

	"github.com/okian/talentmatch/internal/domain/model"
)

// Store provides read access to the employee population.
type Store interface {
	// Snapshot returns a read-only view of the full population. The same
	// version is returned until the underlying population changes.
	Snapshot(ctx context.Context) (*model.Snapshot, error)

	// Count returns the number of employees available.
	Count(ctx context.Context) int
}

// normalize trims surrounding whitespace from categorical fields. The engine
// compares categorical values exactly, so normalization belongs here, not in
// the score calculator.
func normalize(e *model.Employee) {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.FullName = strings.TrimSpace(e.FullName)
	e.Directorate = strings.TrimSpace(e.Directorate)
	e.Role = strings.TrimSpace(e.Role)
	e.Grade = strings.TrimSpace(e.Grade)
	trim(&e.Education)
	trim(&e.Major)
	trim(&e.Area)
	trim(&e.MBTI)
	trim(&e.DISC)
	for i := range e.Strengths {
		trim(&e.Strengths[i])
	}
}

func trim(s **string) {
	if *s == nil {
		return
	}
	t := strings.TrimSpace(**s)
	*s = &t
}
