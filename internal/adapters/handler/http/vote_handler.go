package http

import (
	"encoding/json"
	"net/http"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voterRequest struct {
	BranchID     int    `json:"branch_id"`
	Registration string `json:"registration"`
	NationalID   string `json:"national_id"`
}

type castVoteRequest struct {
	voterRequest
	CandidateID int `json:"candidate_id"`
}

func (h *VoteHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req voterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eligible, err := h.service.CheckEligibility(r.Context(), ports.EligibilityInput{
		BranchID:     req.BranchID,
		Registration: req.Registration,
		NationalID:   req.NationalID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"eligible": eligible})
}

type castVoteResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Vote    *domain.Receipt `json:"vote"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.service.CastVote(r.Context(), ports.CastVoteInput{
		BranchID:     req.BranchID,
		Registration: req.Registration,
		NationalID:   req.NationalID,
		CandidateID:  req.CandidateID,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, castVoteResponse{
		Success: true,
		Message: "vote registered successfully",
		Vote:    receipt,
	})
}
