// Package model contains domain models passed between layers.
package model

// Employee is one immutable directory record. Nullable fields are pointers;
// a nil pointer means the value was never recorded for this employee.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"fullname"`

	// Descriptors used by the ranked projection. Role doubles as the scored
	// "position" attribute.
	Directorate string `json:"directorate"`
	Role        string `json:"role"`
	Grade       string `json:"grade"`

	// Contextual background.
	Education      *string  `json:"education"`
	Major          *string  `json:"major"`
	Area           *string  `json:"area"`
	YearsOfService *float64 `json:"years_of_service"` // months

	// Cognitive test scores.
	IQ    *float64 `json:"iq"`
	GTQ   *float64 `json:"gtq"`
	TIKI  *float64 `json:"tiki"`
	Pauli *float64 `json:"pauli"`
	CFIT  *float64 `json:"cfit"`

	// PAPI scale scores. T, Z and K are inverted: lower raw values fit better.
	PapiG *float64 `json:"papi_g"`
	PapiA *float64 `json:"papi_a"`
	PapiT *float64 `json:"papi_t"`
	PapiZ *float64 `json:"papi_z"`
	PapiK *float64 `json:"papi_k"`

	// Personality type codes.
	MBTI *string `json:"mbti"`
	DISC *string `json:"disc"`

	// Ranked behavioral strengths, rank 1 first. The tail is nil when fewer
	// than five were recorded.
	Strengths [5]*string `json:"strengths"`

	// Competency pillar averages. CustomerFocus and ProblemSolving arrive
	// pre-combined as 2-way averages of their sub-pillars.
	SEA              *float64 `json:"sea"`
	CustomerFocus    *float64 `json:"customer_focus"`
	Integrity        *float64 `json:"integrity"`
	DriveResult      *float64 `json:"drive_result"`
	ProblemSolving   *float64 `json:"problem_solving"`
	Collaboration    *float64 `json:"collaboration"`
	DevelopingOthers *float64 `json:"developing_others"`
	Adaptability     *float64 `json:"adaptability"`
}

// Snapshot is a read-only view of the employee population for the duration
// of one match invocation.
type Snapshot struct {
	// Version changes whenever the underlying population changes. It keys
	// cached match results.
	Version   string
	Employees []Employee

	index map[string]int
}

// NewSnapshot builds a snapshot with an id index over employees.
func NewSnapshot(version string, employees []Employee) *Snapshot {
	s := &Snapshot{
		Version:   version,
		Employees: employees,
		index:     make(map[string]int, len(employees)),
	}
	for i := range employees {
		s.index[employees[i].EmployeeID] = i
	}
	return s
}

// Get returns the employee with the given id.
func (s *Snapshot) Get(id string) (Employee, bool) {
	i, ok := s.index[id]
	if !ok {
		return Employee{}, false
	}
	return s.Employees[i], true
}

// Len returns the population size.
func (s *Snapshot) Len() int {
	return len(s.Employees)
}
