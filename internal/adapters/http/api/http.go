// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	service "github.com/okian/talentmatch/internal/app"
	"github.com/okian/talentmatch/internal/domain/model"
	"github.com/okian/talentmatch/internal/engine"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Match runs one scoring invocation against the current directory.
	Match(ctx context.Context, req service.MatchRequest) (*service.MatchOutcome, error)

	// Employees exposes the directory snapshot for read-only listing.
	Employees(ctx context.Context) (*model.Snapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	matchHandler     *MatchHandler
	employeesHandler *EmployeesHandler

	maxRows int
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMaxRows caps the number of employees returned by the listing
// endpoint.
func WithMaxRows(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxRows = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		maxRows: defaultMaxRows,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.matchHandler = NewMatchHandler(deps)
	s.employeesHandler = NewEmployeesHandler(deps, s.maxRows)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/matches", MetricsMiddleware(s.matchHandler.HandlePostMatch, "matches"))
	mux.HandleFunc("/employees", MetricsMiddleware(s.employeesHandler.HandleListEmployees, "employees"))
}

// matchRequest mirrors the OpenAPI schema for POST /matches.
type matchRequest struct {
	BenchmarkIDs []string `json:"benchmark_ids"`
	RoleName     string   `json:"role_name"`
	JobLevel     string   `json:"job_level"`
	RolePurpose  string   `json:"role_purpose"`
	IncludeRows  bool     `json:"include_rows"`
}

func (m matchRequest) validate() error {
	if len(m.BenchmarkIDs) == 0 {
		return errors.New("missing benchmark_ids")
	}
	for _, id := range m.BenchmarkIDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("blank benchmark id")
		}
	}
	return nil
}

// matchResponse is the body of a successful POST /matches.
type matchResponse struct {
	VacancyID       string           `json:"vacancy_id,omitempty"`
	SnapshotVersion string           `json:"snapshot_version"`
	CacheHit        bool             `json:"cache_hit"`
	Summaries       []model.Summary  `json:"summaries"`
	Rows            []model.MatchRow `json:"rows,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// wrapOp tags a handler error with its operation name for logs and bodies.
func wrapOp(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidBenchmark):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotReady):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
