package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cipavote/api/internal/core/domain"
	"github.com/cipavote/api/internal/core/ports"
)

// maxUploadMemory bounds how much of a multipart body is held in memory;
// larger photos spill to temporary files.
const maxUploadMemory = 8 << 20

type AdminHandler struct {
	candidates ports.CandidateService
	tally      ports.TallyService
	photos     ports.PhotoStore
}

func NewAdminHandler(candidates ports.CandidateService, tally ports.TallyService, photos ports.PhotoStore) *AdminHandler {
	return &AdminHandler{
		candidates: candidates,
		tally:      tally,
		photos:     photos,
	}
}

func (h *AdminHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	branchID, ok := optionalBranchParam(w, r)
	if !ok {
		return
	}

	candidates, err := h.candidates.ListAdmin(r.Context(), branchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, candidates)
}

type candidateResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Candidate *domain.Candidate `json:"candidate"`
}

func (h *AdminHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	branchID, _ := strconv.Atoi(r.FormValue("branch_id"))

	photoURL, ok := h.savePhoto(w, r)
	if !ok {
		return
	}

	candidate, err := h.candidates.Create(r.Context(), ports.CreateCandidateInput{
		BranchID: branchID,
		Name:     r.FormValue("name"),
		Sector:   r.FormValue("sector"),
		PhotoURL: photoURL,
	})
	if err != nil {
		// Don't leave the uploaded file behind when the row was never created.
		if photoURL != "" {
			_ = h.photos.Remove(photoURL)
		}
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, candidateResponse{
		Success:   true,
		Message:   "candidate created successfully",
		Candidate: candidate,
	})
}

func (h *AdminHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "candidate id must be a positive number")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := ports.UpdateCandidateInput{}
	if v := r.FormValue("name"); v != "" {
		input.Name = &v
	}
	if v := r.FormValue("sector"); v != "" {
		input.Sector = &v
	}

	photoURL, ok := h.savePhoto(w, r)
	if !ok {
		return
	}
	if photoURL != "" {
		input.PhotoURL = &photoURL
	}

	candidate, err := h.candidates.Update(r.Context(), id, input)
	if err != nil {
		if photoURL != "" {
			_ = h.photos.Remove(photoURL)
		}
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candidateResponse{
		Success:   true,
		Message:   "candidate updated successfully",
		Candidate: candidate,
	})
}

func (h *AdminHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "candidate id must be a positive number")
		return
	}

	if err := h.candidates.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "candidate removed successfully",
	})
}

func (h *AdminHandler) Results(w http.ResponseWriter, r *http.Request) {
	branchID, ok := optionalBranchParam(w, r)
	if !ok {
		return
	}

	results, err := h.tally.Results(r.Context(), branchID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.tally.Overview(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tally.Statistics(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// savePhoto stores an uploaded photo, if any. It returns the public URL
// ("" when no file was sent) and false when it already wrote an error
// response.
func (h *AdminHandler) savePhoto(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		respondError(w, http.StatusBadRequest, "invalid photo upload")
		return "", false
	}
	defer file.Close()

	url, err := h.photos.Save(header.Filename, file)
	if err != nil {
		respondDomainError(w, err)
		return "", false
	}
	return url, true
}

func optionalBranchParam(w http.ResponseWriter, r *http.Request) (*int, bool) {
	branchParam := r.URL.Query().Get("branch")
	if branchParam == "" {
		return nil, true
	}
	branchID, err := strconv.Atoi(branchParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "branch id must be a positive number")
		return nil, false
	}
	return &branchID, true
}
