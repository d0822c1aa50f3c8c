package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cipavote/api/internal/core/ports"
)

type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

// ListByBranch serves the public candidate list for the voting screen. The
// branch query parameter is required; no vote counts are exposed here.
func (h *CandidateHandler) ListByBranch(w http.ResponseWriter, r *http.Request) {
	branchParam := r.URL.Query().Get("branch")
	if branchParam == "" {
		respondError(w, http.StatusBadRequest, "branch query parameter is required")
		return
	}
	branchID, err := strconv.Atoi(branchParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "branch id must be a positive number")
		return
	}

	candidates, err := h.service.ListByBranch(r.Context(), branchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, candidates)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "candidate id must be a positive number")
		return
	}

	candidate, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, candidate)
}
