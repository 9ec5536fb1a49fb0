// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	service "github.com/okian/draftroots/internal/app"
	"github.com/okian/draftroots/internal/domain/model"
)

// DefaultMaxLimit caps the limit query parameter when none is configured.
const DefaultMaxLimit = 100

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ConnectionCounts(ctx context.Context, limit int) ([]model.InstitutionCount, error)
	AverageComposite(ctx context.Context) (map[string]float64, error)
	TopInstitutionsForTeam(ctx context.Context, team string, limit int) ([]model.InstitutionCount, error)
	Teams(ctx context.Context) ([]string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	collegesHandler *CollegesHandler
	teamsHandler    *TeamsHandler
}

// NewServer creates a new API server with all handlers. maxLimit bounds the
// limit query parameter; values <= 0 use DefaultMaxLimit.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		collegesHandler: NewCollegesHandler(deps, maxLimit),
		teamsHandler:    NewTeamsHandler(deps, maxLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /colleges/connections", MetricsMiddleware(s.collegesHandler.HandleConnections, "connections"))
	mux.HandleFunc("GET /colleges/averages", MetricsMiddleware(s.collegesHandler.HandleAverages, "averages"))
	mux.HandleFunc("GET /teams", MetricsMiddleware(s.teamsHandler.HandleTeams, "teams"))
	mux.HandleFunc("GET /teams/{team}/colleges", MetricsMiddleware(s.teamsHandler.HandleTeamColleges, "team_colleges"))
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

// writeQueryError maps a query failure onto a status and error code.
func writeQueryError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrParse), errors.Is(err, model.ErrConfiguration):
		writeError(w, http.StatusUnprocessableEntity, "data_error", Wrap(op, err))
	case errors.Is(err, service.ErrNoDataset):
		writeError(w, http.StatusServiceUnavailable, "unavailable", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// parseLimit reads the optional limit parameter. Absent means no limit.
func parseLimit(r *http.Request, op string, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, WrapKind(op, ErrBadRequest, errors.New("limit must be a positive integer"))
	}
	if n > maxLimit {
		return 0, NewKind(op, ErrLimitExceeded)
	}
	return n, nil
}

func writeLimitError(w http.ResponseWriter, err error) {
	code := "bad_request"
	if errors.Is(err, ErrLimitExceeded) {
		code = "limit_exceeded"
	}
	writeError(w, http.StatusBadRequest, code, err)
}
