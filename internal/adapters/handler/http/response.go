package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cipavote/api/internal/core/domain"
)

type errorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Error: message})
}

// respondDomainError translates the domain error taxonomy into HTTP statuses.
// Anything outside the taxonomy is reported as an opaque internal error.
func respondDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Error:   "invalid input",
			Details: verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrCandidateWrongBranch),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrInvalidPhoto):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrBranchNotFound),
		errors.Is(err, domain.ErrCandidateNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrCandidateHasVotes):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPhotoTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
