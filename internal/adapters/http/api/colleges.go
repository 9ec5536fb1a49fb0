package api

import (
	"net/http"

	"github.com/okian/draftroots/internal/domain/query"
)

// CollegesHandler serves institution-wide queries.
type CollegesHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewCollegesHandler creates a new colleges handler.
func NewCollegesHandler(deps Dependencies, maxLimit int) *CollegesHandler {
	return &CollegesHandler{deps: deps, maxLimit: maxLimit}
}

// HandleConnections handles GET /colleges/connections?limit=N requests.
func (h *CollegesHandler) HandleConnections(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_connections"
	limit, err := parseLimit(r, op, h.maxLimit)
	if err != nil {
		writeLimitError(w, err)
		return
	}
	counts, err := h.deps.ConnectionCounts(r.Context(), limit)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// HandleAverages handles GET /colleges/averages requests. Institutions are
// listed by name.
func (h *CollegesHandler) HandleAverages(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_averages"
	avgs, err := h.deps.AverageComposite(r.Context())
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, query.SortedAverages(avgs))
}
