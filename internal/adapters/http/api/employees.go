// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// defaultMaxRows caps the employee listing when no tighter limit is
// configured.
const defaultMaxRows = 100000

// employeeEntry is the listing projection of one employee.
type employeeEntry struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	Directorate string `json:"directorate"`
	Role        string `json:"role"`
	Grade       string `json:"grade"`
}

// employeesResponse is the body of GET /employees.
type employeesResponse struct {
	SnapshotVersion string          `json:"snapshot_version"`
	Total           int             `json:"total"`
	Employees       []employeeEntry `json:"employees"`
}

// EmployeesHandler handles employee listing requests.
type EmployeesHandler struct {
	deps    Dependencies
	maxRows int
}

// NewEmployeesHandler creates a new employees handler.
func NewEmployeesHandler(deps Dependencies, maxRows int) *EmployeesHandler {
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	return &EmployeesHandler{deps: deps, maxRows: maxRows}
}

// HandleListEmployees handles GET /employees requests. The optional limit
// query parameter truncates the listing; it is capped by the configured
// maximum.
func (h *EmployeesHandler) HandleListEmployees(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_employees"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit := h.maxRows
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, errInvalidLimit))
			return
		}
		if n < limit {
			limit = n
		}
	}

	snap, err := h.deps.Employees(r.Context())
	if err != nil {
		writeError(w, statusFor(err), "internal_error", wrapOp(op, err))
		return
	}

	entries := make([]employeeEntry, 0, min(limit, snap.Len()))
	for _, e := range snap.Employees {
		if len(entries) >= limit {
			break
		}
		entries = append(entries, employeeEntry{
			EmployeeID:  e.EmployeeID,
			FullName:    e.FullName,
			Directorate: e.Directorate,
			Role:        e.Role,
			Grade:       e.Grade,
		})
	}

	writeJSON(w, http.StatusOK, employeesResponse{
		SnapshotVersion: snap.Version,
		Total:           snap.Len(),
		Employees:       entries,
	})
}
