package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var startedAt = time.Now()

type RouterConfig struct {
	AdminToken string
	UploadDir  string
}

func NewHandler(cfg RouterConfig, branchHandler *BranchHandler, candidateHandler *CandidateHandler, voteHandler *VoteHandler, adminHandler *AdminHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Seconds(),
		})
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/branches", branchHandler.List)
		r.Get("/branches/{id}", branchHandler.Get)

		r.Get("/candidates", candidateHandler.ListByBranch)
		r.Get("/candidates/{id}", candidateHandler.Get)

		r.Post("/eligibility", voteHandler.CheckEligibility)
		r.Post("/votes", voteHandler.CastVote)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuth(cfg.AdminToken))

			r.Get("/candidates", adminHandler.ListCandidates)
			r.Post("/candidates", adminHandler.CreateCandidate)
			r.Put("/candidates/{id}", adminHandler.UpdateCandidate)
			r.Delete("/candidates/{id}", adminHandler.DeleteCandidate)

			r.Get("/votes", adminHandler.Results)
			r.Get("/votes/overview", adminHandler.Overview)
			r.Get("/stats", adminHandler.Statistics)
		})
	})

	return r
}
