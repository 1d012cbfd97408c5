package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sort"

	"github.com/okian/talentmatch/internal/domain/model"
)

// MemoryStore holds an immutable in-memory population. It backs tests, the
// file directory and the synthetic seed directory.
type MemoryStore struct {
	snapshot *model.Snapshot
}

// NewMemoryStore builds a store over the given employees. Records are
// normalized and ordered by employee id; the snapshot version is derived
// from the content so identical populations share cache keys.
func NewMemoryStore(employees []model.Employee) (*MemoryStore, error) {
	if len(employees) == 0 {
		return nil, ErrEmptyDirectory
	}
	normalized := make([]model.Employee, len(employees))
	copy(normalized, employees)
	for i := range normalized {
		normalize(&normalized[i])
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].EmployeeID < normalized[j].EmployeeID
	})
	return &MemoryStore{
		snapshot: model.NewSnapshot(version(normalized), normalized),
	}, nil
}

// LoadFile reads a JSON array of employee records and builds a store.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	var employees []model.Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return NewMemoryStore(employees)
}

// Snapshot returns the immutable population view.
func (s *MemoryStore) Snapshot(_ context.Context) (*model.Snapshot, error) {
	return s.snapshot, nil
}

// Count returns the population size.
func (s *MemoryStore) Count(_ context.Context) int {
	return s.snapshot.Len()
}

// version fingerprints the population over ids and names.
func version(employees []model.Employee) string {
	h := fnv.New64a()
	for i := range employees {
		_, _ = h.Write([]byte(employees[i].EmployeeID))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(employees[i].FullName))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("mem-%d-%016x", len(employees), h.Sum64())
}
