package api

import (
	"net/http"
)

// TeamsHandler serves team-scoped queries.
type TeamsHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps Dependencies, maxLimit int) *TeamsHandler {
	return &TeamsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleTeams handles GET /teams requests.
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_teams"
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	if teams == nil {
		teams = []string{}
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleTeamColleges handles GET /teams/{team}/colleges?limit=N requests.
// Team codes are matched exactly; an unknown team yields [].
func (h *TeamsHandler) HandleTeamColleges(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_team_colleges"
	team := r.PathValue("team")
	if team == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrMissingTeam))
		return
	}
	limit, err := parseLimit(r, op, h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	counts, err := h.deps.TopInstitutionsForTeam(r.Context(), team, limit)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
