// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	service "github.com/okian/talentmatch/internal/app"
)

// MatchHandler handles match requests.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandlePostMatch handles POST /matches requests.
func (h *MatchHandler) HandlePostMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_match"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapOp(op, err))
		return
	}

	outcome, err := h.deps.Match(r.Context(), service.MatchRequest{
		BenchmarkIDs: req.BenchmarkIDs,
		RoleName:     req.RoleName,
		JobLevel:     req.JobLevel,
		RolePurpose:  req.RolePurpose,
	})
	if err != nil {
		status := statusFor(err)
		code := "internal_error"
		if status == http.StatusBadRequest {
			code = "invalid_benchmark"
		}
		writeError(w, status, code, wrapOp(op, err))
		return
	}

	resp := matchResponse{
		SnapshotVersion: outcome.Result.SnapshotVersion,
		CacheHit:        outcome.CacheHit,
		Summaries:       outcome.Result.Summaries,
	}
	if outcome.VacancyID != uuid.Nil {
		resp.VacancyID = outcome.VacancyID.String()
	}
	if req.IncludeRows {
		resp.Rows = outcome.Result.Rows
	}
	writeJSON(w, http.StatusOK, resp)
}
